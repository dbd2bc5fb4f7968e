package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor forces plain ASCII output for every style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessBadge.Render("OK")+" "+msg)
}

func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, InfoBadge.Render("INFO")+" "+msg)
}

func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningBadge.Render("WARN")+" "+msg)
}

// PrintErrorWithHint prints msg with a muted hint line beneath it.
func PrintErrorWithHint(w io.Writer, msg, hint string) {
	fmt.Fprintln(w, ErrorBadge.Render("ERROR")+" "+msg)
	if hint != "" {
		fmt.Fprintln(w, "  "+MutedStyle.Render(hint))
	}
}

func PrintDone(w io.Writer, msg string) {
	fmt.Fprintln(w, HeaderStyle.Render(msg))
}
