// Package rename applies a naming convention to the files of one directory.
//
// Renames run in two phases. Every source is first moved to a unique staging
// name, then each staging file is moved to its target. Swaps and rotations
// (a->b, b->a) therefore never clobber a file that has not moved yet, and a
// failure part way through is rolled back to the original names.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/fs"
	"github.com/artisanexperiences/xhtmlren/internal/logger"
	"github.com/artisanexperiences/xhtmlren/internal/naming"
)

const (
	stagingPrefix = ".xhtmlren-"
	stagingSuffix = ".tmp"
)

var errRolledBack = errors.New("rolled back")

type Options struct {
	DryRun bool
	Quiet  bool
}

type Result struct {
	Op      Op
	Error   error
	Skipped bool
}

type Renamer struct {
	cfg        *config.Config
	convention naming.Convention
	opts       Options
	fs         fs.FS
	out        io.Writer
}

// New creates a Renamer on the real file system printing to out.
func New(cfg *config.Config, opts Options, out io.Writer) (*Renamer, error) {
	return NewWithFS(cfg, opts, fs.Default, out)
}

// NewWithFS creates a Renamer with a custom file system and output writer.
// Nil values fall back to fs.Default and os.Stdout.
func NewWithFS(cfg *config.Config, opts Options, filesystem fs.FS, out io.Writer) (*Renamer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if filesystem == nil {
		filesystem = fs.Default
	}
	if out == nil {
		out = os.Stdout
	}

	convention, err := naming.Create(cfg.Convention, naming.Options{
		Prefix:  cfg.Prefix,
		Width:   cfg.Width,
		Pattern: cfg.Pattern,
	})
	if err != nil {
		return nil, err
	}

	return &Renamer{
		cfg:        cfg,
		convention: convention,
		opts:       opts,
		fs:         filesystem,
		out:        out,
	}, nil
}

// Convention returns the naming convention in use.
func (r *Renamer) Convention() naming.Convention {
	return r.convention
}

// Rename plans and applies the configured convention to dir.
func (r *Renamer) Rename(dir string) error {
	plan, err := r.Plan(dir)
	if err != nil {
		return err
	}

	if plan.Total() == 0 {
		r.printf("No %s files found in %s\n", plan.Ext, dir)
		return nil
	}

	_, err = r.Apply(plan)
	return err
}

type staged struct {
	op      Op
	staging string
	done    bool
}

// Apply executes plan. Unchanged files are reported as skipped.
func (r *Renamer) Apply(plan *Plan) ([]Result, error) {
	results := make([]Result, 0, plan.Total())

	if len(plan.Ops) == 0 {
		r.printf("All %d file(s) already match the %s convention\n", len(plan.Unchanged), r.convention.Name())
	}

	if r.opts.DryRun {
		for _, op := range plan.Ops {
			r.printf("[DRY RUN] Would rename: %s -> %s\n", op.From, op.To)
			results = append(results, Result{Op: op})
		}
		return appendUnchanged(results, plan), nil
	}

	var moves []*staged
	for _, op := range plan.Ops {
		s := &staged{op: op, staging: stagingPath(plan.Dir, uuid.NewString())}
		if err := r.fs.Rename(filepath.Join(plan.Dir, op.From), s.staging); err != nil {
			err = fmt.Errorf("%w: staging %s: %w", xerrors.ErrRenameFailed, op.From, err)
			return r.fail(plan, moves, results, op, err)
		}
		moves = append(moves, s)
	}

	for _, s := range moves {
		if err := r.fs.Rename(s.staging, filepath.Join(plan.Dir, s.op.To)); err != nil {
			err = fmt.Errorf("%w: %s -> %s: %w", xerrors.ErrRenameFailed, s.op.From, s.op.To, err)
			return r.fail(plan, moves, results, s.op, err)
		}
		s.done = true
		results = append(results, Result{Op: s.op})
		logger.Debug("renamed", "from", s.op.From, "to", s.op.To)
	}

	// Reported only once every move has landed; a failure above rolls all of them back.
	for _, res := range results {
		r.printf("Renamed: %s -> %s\n", res.Op.From, res.Op.To)
	}

	return appendUnchanged(results, plan), nil
}

// fail moves every file back to its original name and returns err, joined
// with any rollback failures. Finished moves go back to their staging name
// first so no restore can land on a name another file still holds.
func (r *Renamer) fail(plan *Plan, moves []*staged, results []Result, failed Op, err error) ([]Result, error) {
	logger.Error("rename failed, restoring original names", "op", failed.From, "err", err)

	var rollbackErrs []error
	for _, s := range moves {
		if !s.done {
			continue
		}
		if rbErr := r.fs.Rename(filepath.Join(plan.Dir, s.op.To), s.staging); rbErr != nil {
			rollbackErrs = append(rollbackErrs, fmt.Errorf("unstaging %s: %w", s.op.To, rbErr))
			continue
		}
		s.done = false
	}
	for _, s := range moves {
		if s.done {
			continue
		}
		if rbErr := r.fs.Rename(s.staging, filepath.Join(plan.Dir, s.op.From)); rbErr != nil {
			rollbackErrs = append(rollbackErrs, fmt.Errorf("restoring %s: %w", s.op.From, rbErr))
		}
	}

	for i := range results {
		results[i].Error = errRolledBack
	}
	results = append(results, Result{Op: failed, Error: err})

	if len(rollbackErrs) > 0 {
		return results, errors.Join(append([]error{err}, rollbackErrs...)...)
	}
	return results, err
}

func appendUnchanged(results []Result, plan *Plan) []Result {
	for _, name := range plan.Unchanged {
		results = append(results, Result{Op: Op{From: name, To: name}, Skipped: true})
	}
	return results
}

func (r *Renamer) printf(format string, args ...any) {
	if r.opts.Quiet {
		return
	}
	fmt.Fprintf(r.out, format, args...)
}
