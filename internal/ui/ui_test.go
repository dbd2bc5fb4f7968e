package ui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAbort(t *testing.T) {
	assert.Equal(t, ErrAborted, NormalizeAbort(huh.ErrUserAborted))
	assert.Equal(t, ErrAborted, NormalizeAbort(fmt.Errorf("form: %w", huh.ErrUserAborted)))

	other := errors.New("boom")
	assert.Equal(t, other, NormalizeAbort(other))
}

func TestIsAbort(t *testing.T) {
	assert.True(t, IsAbort(ErrAborted))
	assert.True(t, IsAbort(huh.ErrUserAborted))
	assert.False(t, IsAbort(errors.New("boom")))
	assert.False(t, IsAbort(nil))
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, IsInteractive())
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"NAME", "DESCRIPTION"}, [][]string{
		{"sequence", "Numbered names"},
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sequence")
	assert.Contains(t, out, "Numbered names")
}

func TestRenderPlanTable(t *testing.T) {
	out := RenderPlanTable([][]string{
		{"main.xhtml", "section-005.xhtml", "rename"},
		{"section-001.xhtml", "section-001.xhtml", "unchanged"},
	})

	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "main.xhtml")
	assert.Contains(t, out, "section-005.xhtml")
	assert.Contains(t, out, "unchanged")
}

func TestPrintHelpers(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintSuccess(&buf, "renamed 6 file(s)")
	PrintInfo(&buf, "dry run")
	PrintWarning(&buf, "nothing to do")
	PrintErrorWithHint(&buf, "rename failed", "check permissions")
	PrintDone(&buf, "Done!")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[0], "OK")
	assert.Contains(t, lines[0], "renamed 6 file(s)")
	assert.Contains(t, lines[1], "INFO")
	assert.Contains(t, lines[2], "WARN")
	assert.Contains(t, lines[3], "ERROR")
	assert.Contains(t, lines[4], "check permissions")
	assert.Equal(t, "Done!", lines[5])
}

func TestPrintErrorWithHint_NoHint(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintErrorWithHint(&buf, "boom", "")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
