package ui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs fn while a spinner with title is shown.
func RunWithSpinner(title string, fn func() error) error {
	return spinner.New().
		Title(title).
		ActionWithErr(func(context.Context) error {
			return fn()
		}).
		Run()
}
