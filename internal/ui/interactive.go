package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// ErrAborted is returned when the user backs out of a prompt.
var ErrAborted = errors.New("aborted by user")

// IsInteractive reports whether both stdin and stdout are attached to a terminal
// and the CI environment variable is unset.
func IsInteractive() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// NormalizeAbort maps huh's abort error onto ErrAborted.
func NormalizeAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

func IsAbort(err error) bool {
	return errors.Is(err, ErrAborted) || errors.Is(err, huh.ErrUserAborted)
}

// ConfirmRename asks before applying count renames in dir.
func ConfirmRename(dir string, count int) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Rename files").
				Description(fmt.Sprintf("Rename %d file(s) in %s?", count, dir)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, NormalizeAbort(err)
	}

	return confirmed, nil
}
