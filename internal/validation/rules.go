package validation

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/artisanexperiences/xhtmlren/internal/config"
)

// RequiredField validates that a string field is not empty.
type RequiredField struct {
	GetValue  func(*config.Config) string
	FieldName string
}

func (r RequiredField) Validate(cfg *config.Config) error {
	if strings.TrimSpace(r.GetValue(cfg)) == "" {
		return fmt.Errorf("required field %q is missing", r.FieldName)
	}
	return nil
}

// OneOf validates that a field value is one of the allowed values.
// Allowed is resolved lazily so registries filled in init() are complete.
type OneOf struct {
	GetValue  func(*config.Config) string
	FieldName string
	Allowed   func() []string
}

func (o OneOf) Validate(cfg *config.Config) error {
	value := o.GetValue(cfg)
	allowed := o.Allowed()
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("field %q must be one of %v, got %q", o.FieldName, allowed, value)
}

// IntRange validates an integer field falls within [Min, Max].
type IntRange struct {
	GetValue  func(*config.Config) int
	FieldName string
	Min, Max  int
}

func (r IntRange) Validate(cfg *config.Config) error {
	v := r.GetValue(cfg)
	if v < r.Min || v > r.Max {
		return fmt.Errorf("field %q must be between %d and %d, got %d", r.FieldName, r.Min, r.Max, v)
	}
	return nil
}

// ValidGlob validates an optional doublestar pattern.
type ValidGlob struct {
	GetValue  func(*config.Config) string
	FieldName string
}

func (g ValidGlob) Validate(cfg *config.Config) error {
	pattern := g.GetValue(cfg)
	if pattern == "" {
		return nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("field %q is not a valid glob: %q", g.FieldName, pattern)
	}
	return nil
}

// CustomRule allows defining a validation rule using a function.
type CustomRule struct {
	Name       string
	ValidateFn func(*config.Config) error
}

func (c CustomRule) Validate(cfg *config.Config) error {
	return c.ValidateFn(cfg)
}

// NewConfigValidator builds the validator the rename and smoke commands run.
func NewConfigValidator(conventions func() []string) *Validator {
	return NewValidator().
		AddRule(RequiredField{
			GetValue:  func(c *config.Config) string { return c.Extension },
			FieldName: "extension",
		}).
		AddRule(CustomRule{
			Name: "extension.separator",
			ValidateFn: func(c *config.Config) error {
				if strings.ContainsAny(c.Extension, `/\`) {
					return fmt.Errorf("field %q must not contain a path separator", "extension")
				}
				return nil
			},
		}).
		AddRule(OneOf{
			GetValue:  func(c *config.Config) string { return c.Convention },
			FieldName: "convention",
			Allowed:   conventions,
		}).
		AddRule(OneOf{
			GetValue:  func(c *config.Config) string { return c.Sort },
			FieldName: "sort",
			Allowed:   func() []string { return []string{config.SortNatural, config.SortLexical} },
		}).
		AddRule(IntRange{
			GetValue:  func(c *config.Config) int { return c.Width },
			FieldName: "width",
			Min:       0,
			Max:       12,
		}).
		AddRule(IntRange{
			GetValue:  func(c *config.Config) int { return c.Start },
			FieldName: "start",
			Min:       0,
			Max:       1_000_000,
		}).
		AddRule(ValidGlob{
			GetValue:  func(c *config.Config) string { return c.Include },
			FieldName: "include",
		}).
		AddRule(CustomRule{
			Name: "template.pattern",
			ValidateFn: func(c *config.Config) error {
				if c.Convention == "template" && strings.TrimSpace(c.Pattern) == "" {
					return fmt.Errorf("field %q is required for the template convention", "pattern")
				}
				return nil
			},
		})
}
