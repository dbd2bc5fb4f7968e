package naming

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
)

// TemplateData is what a pattern is executed against.
type TemplateData struct {
	Prefix   string
	Position int
	Index    int
	Total    int
	Stem     string
	Ext      string
	Width    int
	Padded   string
}

// Template renders names from a user supplied text/template pattern.
// Sprig functions are available, e.g. {{ .Stem | lower }}.
type Template struct {
	pattern string
	prefix  string
	width   int
	tmpl    *template.Template
}

func NewTemplate(pattern, prefix string, width int) (*Template, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: template convention requires a pattern", xerrors.ErrInvalidConfig)
	}
	tmpl, err := template.New("name").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &Template{pattern: pattern, prefix: prefix, width: width, tmpl: tmpl}, nil
}

func (t *Template) Name() string { return "template" }

func (t *Template) Description() string {
	return "Go template pattern over .Prefix .Position .Padded .Stem .Ext"
}

func (t *Template) Target(e Entry) (string, error) {
	data := TemplateData{
		Prefix:   t.prefix,
		Position: e.Position,
		Index:    e.Index,
		Total:    e.Total,
		Stem:     e.Stem,
		Ext:      e.Ext,
		Width:    t.width,
		Padded:   Pad(e.Position, t.width, e.LastPosition()),
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
