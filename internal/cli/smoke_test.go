package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smokeDir pulls the fixture directory out of the driver output.
func smokeDir(t *testing.T, out string) string {
	t.Helper()
	const marker = "Created test directory: "
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, marker) {
			return strings.TrimPrefix(line, marker)
		}
	}
	t.Fatalf("no test directory in output:\n%s", out)
	return ""
}

func TestSmokeCommand(t *testing.T) {
	out, err := execute(t, "smoke")
	requireNoError(t, err)

	dir := smokeDir(t, out)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "expected %s to be removed", dir)

	before := out[strings.Index(out, "Files before renaming:"):strings.Index(out, "Running renaming script on:")]
	assert.Contains(t, before, "  main-5.xhtml")
	assert.Contains(t, before, "  backmatter.xhtml")

	after := out[strings.Index(out, "Files after renaming:"):]
	for _, name := range []string{"section-001.xhtml", "section-006.xhtml"} {
		assert.Contains(t, after, "  "+name)
	}
	assert.Equal(t, 6, strings.Count(after, ".xhtml\n"))
	assert.Contains(t, out, "Test completed!")
}

func TestSmokeCommand_Keep(t *testing.T) {
	out, err := execute(t, "smoke", "--keep")
	requireNoError(t, err)

	dir := smokeDir(t, out)
	t.Cleanup(func() { os.RemoveAll(dir) })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
	assert.Contains(t, out, "Keeping test directory: "+dir)
}

func TestSmokeCommand_Options(t *testing.T) {
	out, err := execute(t, "smoke", "--ext", "html", "--convention", "slug")
	requireNoError(t, err)

	assert.Contains(t, out, "Created: main.html")
	assert.Contains(t, out, "Creating sample .html files for testing...")
	assert.Contains(t, out, "Test completed!")
}

func TestSmokeCommand_DryRun(t *testing.T) {
	out, err := execute(t, "--dry-run", "smoke")
	requireNoError(t, err)

	after := out[strings.Index(out, "Files after renaming:"):]
	assert.Contains(t, after, "  main.xhtml")
	assert.Contains(t, out, "[DRY RUN] Would rename")
}

func TestSmokeCommand_InvalidConvention(t *testing.T) {
	_, err := execute(t, "smoke", "--convention", "nope")
	require.Error(t, err)
}

func TestSmokeCommand_EnvironmentOverrides(t *testing.T) {
	t.Setenv("XHTMLREN_PREFIX", "part-")
	t.Setenv("XHTMLREN_WIDTH", "1")

	out, err := execute(t, "smoke")
	requireNoError(t, err)

	after := out[strings.Index(out, "Files after renaming:"):]
	assert.Contains(t, after, "  part-1.xhtml")
	assert.Contains(t, after, "  part-6.xhtml")
	assert.NotContains(t, after, "section-")
}
