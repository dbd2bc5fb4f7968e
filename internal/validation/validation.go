// Package validation provides composable rules for checking an xhtmlren
// configuration before any file is touched.
package validation

import (
	"errors"
	"fmt"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
)

// Rule defines a single validation rule that can be applied to a Config.
type Rule interface {
	// Validate returns an error if the rule fails, nil otherwise.
	Validate(cfg *config.Config) error
}

// Validator aggregates multiple rules and validates them together.
type Validator struct {
	Rules []Rule
}

func NewValidator() *Validator {
	return &Validator{Rules: make([]Rule, 0)}
}

// AddRule adds a validation rule to the validator.
func (v *Validator) AddRule(rule Rule) *Validator {
	v.Rules = append(v.Rules, rule)
	return v
}

// Validate runs every rule and joins all failures, wrapped in ErrInvalidConfig.
func (v *Validator) Validate(cfg *config.Config) error {
	var errs []error
	for _, rule := range v.Rules {
		if err := rule.Validate(cfg); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", xerrors.ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// RuleCount returns the number of rules in the validator.
func (v *Validator) RuleCount() int {
	return len(v.Rules)
}
