package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/logger"
	"github.com/artisanexperiences/xhtmlren/internal/naming"
)

// Op is a single rename of a base name within the plan directory.
type Op struct {
	From string
	To   string
}

// Plan is the full, validated set of renames for one directory.
type Plan struct {
	Dir       string
	Ext       string
	Ops       []Op
	Unchanged []string
}

// Total returns the number of matching files the plan covers.
func (p *Plan) Total() int {
	return len(p.Ops) + len(p.Unchanged)
}

// Rows returns FROM/TO/STATUS rows in rename order for table output.
func (p *Plan) Rows() [][]string {
	rows := make([][]string, 0, p.Total())
	for _, op := range p.Ops {
		rows = append(rows, []string{op.From, op.To, "rename"})
	}
	for _, name := range p.Unchanged {
		rows = append(rows, []string{name, name, "unchanged"})
	}
	return rows
}

// Plan scans dir and works out the target name of every matching file.
// It fails with ErrCollision or ErrInvalidTarget before anything is renamed.
func (r *Renamer) Plan(dir string) (*Plan, error) {
	info, err := r.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, xerrors.ErrDirectoryNotFound)
		}
		return nil, fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dir, xerrors.ErrDirectoryNotFound)
	}

	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	names, existing, err := r.selectFiles(entries)
	if err != nil {
		return nil, err
	}
	r.order(names)

	plan := &Plan{Dir: dir, Ext: r.cfg.Extension}
	sources := make(map[string]bool, len(names))
	for _, n := range names {
		sources[n] = true
	}
	claimed := make(map[string]string, len(names))

	for i, name := range names {
		e := naming.Entry{
			Index:    i,
			Position: r.cfg.Start + i,
			Total:    len(names),
			Stem:     strings.TrimSuffix(name, r.cfg.Extension),
			Ext:      r.cfg.Extension,
		}
		target, err := r.convention.Target(e)
		if err != nil {
			return nil, fmt.Errorf("naming %s: %w", name, err)
		}
		if err := r.checkTarget(name, target); err != nil {
			return nil, err
		}

		if prev, ok := claimed[target]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", xerrors.ErrCollision, prev, name, target)
		}
		claimed[target] = name

		if existing[target] && !sources[target] {
			return nil, fmt.Errorf("%w: %s would overwrite existing %s", xerrors.ErrCollision, name, target)
		}

		if target == name {
			plan.Unchanged = append(plan.Unchanged, name)
			continue
		}
		plan.Ops = append(plan.Ops, Op{From: name, To: target})
	}

	logger.Debug("planned rename", "dir", dir, "files", plan.Total(), "changes", len(plan.Ops))
	return plan, nil
}

// selectFiles returns the candidate names plus every name present in the
// directory, files and subdirectories alike.
func (r *Renamer) selectFiles(entries []os.DirEntry) ([]string, map[string]bool, error) {
	ext := r.cfg.Extension
	existing := make(map[string]bool, len(entries))
	var names []string

	for _, entry := range entries {
		name := entry.Name()
		existing[name] = true

		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(name, ext) || len(name) == len(ext) {
			continue
		}
		if isStagingName(name) {
			logger.Warn("ignoring leftover staging file", "name", name)
			continue
		}
		if r.cfg.Include != "" {
			ok, err := doublestar.Match(r.cfg.Include, name)
			if err != nil {
				return nil, nil, fmt.Errorf("matching include pattern: %w", err)
			}
			if !ok {
				continue
			}
		}
		names = append(names, name)
	}

	return names, existing, nil
}

func (r *Renamer) order(names []string) {
	if r.cfg.Sort == config.SortLexical {
		sort.Strings(names)
		return
	}
	// Compare stems so "main" sorts before "main-5" whatever the extension.
	ext := r.cfg.Extension
	for i, name := range names {
		names[i] = strings.TrimSuffix(name, ext)
	}
	naming.SortNatural(names)
	for i, stem := range names {
		names[i] = stem + ext
	}
}

func (r *Renamer) checkTarget(source, target string) error {
	switch {
	case target == "", target == ".", target == "..":
		return fmt.Errorf("%w: %s maps to %q", xerrors.ErrInvalidTarget, source, target)
	case strings.ContainsAny(target, `/\`):
		return fmt.Errorf("%w: %s maps to %q, which contains a path separator", xerrors.ErrInvalidTarget, source, target)
	case !strings.HasSuffix(target, r.cfg.Extension) || len(target) == len(r.cfg.Extension):
		return fmt.Errorf("%w: %s maps to %q, which does not keep the %s extension", xerrors.ErrInvalidTarget, source, target, r.cfg.Extension)
	case isStagingName(target):
		return fmt.Errorf("%w: %s maps to reserved name %q", xerrors.ErrInvalidTarget, source, target)
	}
	return nil
}

func stagingPath(dir, id string) string {
	return filepath.Join(dir, stagingPrefix+id+stagingSuffix)
}

func isStagingName(name string) bool {
	return strings.HasPrefix(name, stagingPrefix) && strings.HasSuffix(name, stagingSuffix)
}
