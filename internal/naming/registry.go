// Package naming holds the naming conventions xhtmlren can apply to a set of
// files. A convention maps one ordered file entry to its new base name.
package naming

import (
	"fmt"
	"sort"

	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
)

// Entry describes one file in its final rename order.
type Entry struct {
	// Index is the zero-based position in the ordered set.
	Index int
	// Position is Start + Index, the number a numbering convention prints.
	Position int
	// Total is the number of files in the set.
	Total int
	// Stem is the current base name without the extension.
	Stem string
	// Ext is the extension including the leading dot.
	Ext string
}

// LastPosition returns the position of the final entry in the set.
func (e Entry) LastPosition() int {
	return e.Position - e.Index + e.Total - 1
}

// Options carries the convention settings taken from config.
type Options struct {
	Prefix  string
	Width   int
	Pattern string
}

type Convention interface {
	Name() string
	Description() string
	Target(e Entry) (string, error)
}

type Factory func(opts Options) (Convention, error)

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("convention %q already registered", name))
	}
	registry[name] = factory
}

func Create(name string, opts Options) (Convention, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", xerrors.ErrUnknownConvention, name, ListRegistered())
	}
	return factory(opts)
}

func ListRegistered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("sequence", func(opts Options) (Convention, error) {
		return NewSequence(opts.Prefix, opts.Width), nil
	})
	Register("slug", func(opts Options) (Convention, error) {
		return NewSlug(), nil
	})
	Register("lower", func(opts Options) (Convention, error) {
		return NewLower(), nil
	})
	Register("template", func(opts Options) (Convention, error) {
		return NewTemplate(opts.Pattern, opts.Prefix, opts.Width)
	})
}
