package fixture

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/fs"
	"github.com/artisanexperiences/xhtmlren/internal/rename"
)

// recordingRenamer records the directory it was called with and runs fn.
type recordingRenamer struct {
	dir string
	fn  func(dir string) error
}

func (r *recordingRenamer) Rename(dir string) error {
	r.dir = dir
	if r.fn != nil {
		return r.fn(dir)
	}
	return nil
}

func newDriver(m fs.FS, renamer Renamer) (*Driver, *bytes.Buffer) {
	var out bytes.Buffer
	return &Driver{FS: m, Renamer: renamer, Out: &out, Ext: ".xhtml"}, &out
}

func TestCreateSampleFiles(t *testing.T) {
	m := fs.NewMockFS()
	var out bytes.Buffer

	dir, err := CreateSampleFiles(m, ".xhtml", &out)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(dir), "xhtml_test_"))
	names, err := ListFiles(m, dir, ".xhtml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"backmatter.xhtml",
		"chapter1.xhtml",
		"chapter2.xhtml",
		"chapter3.xhtml",
		"main-5.xhtml",
		"main.xhtml",
	}, names)

	data, err := m.ReadFile(filepath.Join(dir, "main-5.xhtml"))
	require.NoError(t, err)
	assert.Equal(t, "<!-- Sample content for main-5.xhtml -->\n<html><body><h1>Sample Content</h1></body></html>", string(data))

	assert.Contains(t, out.String(), "Created test directory: "+dir)
	assert.Contains(t, out.String(), "Created: backmatter.xhtml")
}

func TestCreateSampleFiles_UniqueDirectories(t *testing.T) {
	m := fs.NewMockFS()
	var out bytes.Buffer

	first, err := CreateSampleFiles(m, ".xhtml", &out)
	require.NoError(t, err)
	second, err := CreateSampleFiles(m, ".xhtml", &out)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestListFiles_FiltersExtension(t *testing.T) {
	m := fs.NewMockFS()
	m.AddFile("/d/b.xhtml", nil, 0644)
	m.AddFile("/d/a.xhtml", nil, 0644)
	m.AddFile("/d/notes.txt", nil, 0644)
	m.AddDir("/d/sub.xhtml")

	names, err := ListFiles(m, "/d", ".xhtml")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xhtml", "b.xhtml"}, names)
}

func TestListFiles_MissingDirectory(t *testing.T) {
	_, err := ListFiles(fs.NewMockFS(), "/missing", ".xhtml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDriver_Run_NoopRenamer(t *testing.T) {
	m := fs.NewMockFS()
	renamer := &recordingRenamer{}
	d, out := newDriver(m, renamer)

	require.NoError(t, d.Run())

	require.NotEmpty(t, renamer.dir)
	assert.False(t, m.DirExists(renamer.dir), "test directory should be removed")

	want := strings.Join([]string{
		"Files before renaming:",
		"  backmatter.xhtml",
		"  chapter1.xhtml",
		"  chapter2.xhtml",
		"  chapter3.xhtml",
		"  main-5.xhtml",
		"  main.xhtml",
	}, "\n")
	assert.Contains(t, out.String(), want)
	assert.Contains(t, out.String(), "Running renaming script on: "+renamer.dir)
	assert.Contains(t, out.String(), strings.Repeat("=", 50))
	assert.True(t, strings.HasSuffix(out.String(), "Test completed!\n"))
}

func TestDriver_Run_SequenceRenamer(t *testing.T) {
	m := fs.NewMockFS()
	var out bytes.Buffer
	r, err := rename.NewWithFS(config.Default(), rename.Options{}, m, &out)
	require.NoError(t, err)

	d := &Driver{FS: m, Renamer: r, Out: &out, Ext: ".xhtml"}
	require.NoError(t, d.Run())

	output := out.String()
	afterIdx := strings.Index(output, "Files after renaming:")
	require.GreaterOrEqual(t, afterIdx, 0)
	after := output[afterIdx:]
	for i := 1; i <= 6; i++ {
		assert.Contains(t, after, "  section-00"+string(rune('0'+i))+".xhtml")
	}
	assert.Contains(t, output, "Renamed: main.xhtml -> section-005.xhtml")
	assert.NotContains(t, after, "  main.xhtml")
}

func TestDriver_Run_RenameFailureStillCleansUp(t *testing.T) {
	m := fs.NewMockFS()
	renamer := &recordingRenamer{fn: func(string) error { return errors.New("boom") }}
	d, out := newDriver(m, renamer)

	err := d.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.False(t, m.DirExists(renamer.dir), "test directory should be removed after a failed rename")
	assert.Contains(t, out.String(), "Cleaning up test directory")
	assert.NotContains(t, out.String(), "Test completed!")
}

func TestDriver_Run_CountMismatch(t *testing.T) {
	m := fs.NewMockFS()
	renamer := &recordingRenamer{fn: func(dir string) error {
		return m.Remove(filepath.Join(dir, "main.xhtml"))
	}}
	d, _ := newDriver(m, renamer)

	err := d.Run()
	assert.True(t, errors.Is(err, xerrors.ErrCountMismatch), "got %v", err)
	assert.False(t, m.DirExists(renamer.dir))
}

func TestDriver_Run_Keep(t *testing.T) {
	m := fs.NewMockFS()
	renamer := &recordingRenamer{}
	d, out := newDriver(m, renamer)
	d.Keep = true

	require.NoError(t, d.Run())

	assert.True(t, m.DirExists(renamer.dir))
	assert.Contains(t, out.String(), "Keeping test directory: "+renamer.dir)
}

func TestDriver_Run_RealFS(t *testing.T) {
	renamer := &recordingRenamer{}
	d := NewDriver(renamer)
	var out bytes.Buffer
	d.Out = &out

	require.NoError(t, d.Run())

	_, err := os.Stat(renamer.dir)
	assert.True(t, os.IsNotExist(err), "expected %s to be removed", renamer.dir)
}

func TestSampleNames(t *testing.T) {
	assert.Equal(t, []string{"main.html", "main-5.html", "chapter1.html", "chapter2.html", "chapter3.html", "backmatter.html"}, SampleNames(".html"))
	assert.Len(t, SampleNames(".xhtml"), 6)
}
