package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
)

// Pad formats position zero-padded to width. A width of zero or less pads to
// the digit count of last, so every name in the set has the same length.
func Pad(position, width, last int) string {
	if width <= 0 {
		width = len(strconv.Itoa(last))
	}
	return fmt.Sprintf("%0*d", width, position)
}

// Sequence numbers files in order: <prefix><padded position><ext>.
type Sequence struct {
	prefix string
	width  int
}

func NewSequence(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width}
}

func (s *Sequence) Name() string { return "sequence" }

func (s *Sequence) Description() string {
	return "Numbered names in order, e.g. section-001.xhtml"
}

func (s *Sequence) Target(e Entry) (string, error) {
	return s.prefix + Pad(e.Position, s.width, e.LastPosition()) + e.Ext, nil
}

// Slug keeps the stem but normalizes it to a URL-safe lowercase slug.
type Slug struct{}

func NewSlug() *Slug { return &Slug{} }

func (s *Slug) Name() string { return "slug" }

func (s *Slug) Description() string {
	return "URL-safe lowercase stem, e.g. Chapter One.xhtml -> chapter-one.xhtml"
}

func (s *Slug) Target(e Entry) (string, error) {
	name := slug.Make(e.Stem)
	if name == "" {
		return "", fmt.Errorf("%w: %q slugifies to an empty name", xerrors.ErrInvalidTarget, e.Stem+e.Ext)
	}
	return name + e.Ext, nil
}

// Lower lower-cases the stem and leaves everything else alone.
type Lower struct{}

func NewLower() *Lower { return &Lower{} }

func (l *Lower) Name() string { return "lower" }

func (l *Lower) Description() string {
	return "Lowercase stem, e.g. Main.xhtml -> main.xhtml"
}

func (l *Lower) Target(e Entry) (string, error) {
	return strings.ToLower(e.Stem) + e.Ext, nil
}
