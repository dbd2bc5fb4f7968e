// Package fixture is the smoke-test driver for the rename operation. It writes
// a fixed set of sample files into a fresh temporary directory, runs a Renamer
// over it and prints the directory before and after.
package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/artisanexperiences/xhtmlren/internal/config"
	xerrors "github.com/artisanexperiences/xhtmlren/internal/errors"
	"github.com/artisanexperiences/xhtmlren/internal/fs"
	"github.com/artisanexperiences/xhtmlren/internal/logger"
)

// TempDirPattern is the MkdirTemp pattern for the fixture directory.
const TempDirPattern = "xhtml_test_*"

// SampleStems are the fixture names in creation order.
var SampleStems = []string{
	"main",
	"main-5",
	"chapter1",
	"chapter2",
	"chapter3",
	"backmatter",
}

var separator = strings.Repeat("=", 50)

// Renamer is the operation under test.
type Renamer interface {
	Rename(dir string) error
}

// SampleNames returns the fixture file names for ext in creation order.
func SampleNames(ext string) []string {
	names := make([]string, len(SampleStems))
	for i, stem := range SampleStems {
		names[i] = stem + ext
	}
	return names
}

// SampleContent is the placeholder payload written for name.
func SampleContent(name string) []byte {
	return []byte(fmt.Sprintf("<!-- Sample content for %s -->\n<html><body><h1>Sample Content</h1></body></html>", name))
}

// CreateSampleFiles makes a new temporary directory and writes every sample
// file into it. On a write failure the directory is returned along with the
// error so the caller can still clean it up.
func CreateSampleFiles(filesystem fs.FS, ext string, out io.Writer) (string, error) {
	dir, err := filesystem.MkdirTemp("", TempDirPattern)
	if err != nil {
		return "", fmt.Errorf("creating test directory: %w", err)
	}
	fmt.Fprintf(out, "Created test directory: %s\n", dir)

	for _, name := range SampleNames(ext) {
		if err := filesystem.WriteFile(filepath.Join(dir, name), SampleContent(name), 0644); err != nil {
			return dir, fmt.Errorf("writing %s: %w", name, err)
		}
		fmt.Fprintf(out, "Created: %s\n", name)
	}

	return dir, nil
}

// ListFiles returns the regular files in dir ending in ext, sorted.
func ListFiles(filesystem fs.FS, dir, ext string) ([]string, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Driver runs one smoke test.
type Driver struct {
	FS      fs.FS
	Renamer Renamer
	Out     io.Writer
	Ext     string
	// Keep leaves the temporary directory in place after the run.
	Keep bool
}

// NewDriver creates a driver on the real file system printing to stdout.
func NewDriver(renamer Renamer) *Driver {
	return &Driver{
		FS:      fs.Default,
		Renamer: renamer,
		Out:     os.Stdout,
		Ext:     config.DefaultExtension,
	}
}

// Run creates the fixtures, prints the listing, renames, prints the listing
// again and removes the directory. The directory is removed on every path
// once it exists.
func (d *Driver) Run() (err error) {
	fmt.Fprintf(d.Out, "Creating sample %s files for testing...\n", d.Ext)

	dir, err := CreateSampleFiles(d.FS, d.Ext, d.Out)
	if dir != "" {
		defer func() {
			if cleanupErr := d.cleanup(dir); err == nil {
				err = cleanupErr
			}
			if err == nil {
				fmt.Fprintln(d.Out, "Test completed!")
			}
		}()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(d.Out, "\nSample files created in: %s\n", dir)
	before, err := d.printListing("Files before renaming:", dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.Out, "\nRunning renaming script on: %s\n", dir)
	fmt.Fprintln(d.Out, separator)

	if err := d.Renamer.Rename(dir); err != nil {
		return fmt.Errorf("renaming files in %s: %w", dir, err)
	}

	fmt.Fprintln(d.Out, "\n"+separator)
	after, err := d.printListing("Files after renaming:", dir)
	if err != nil {
		return err
	}

	if len(after) != len(before) {
		return fmt.Errorf("%w: %d before, %d after", xerrors.ErrCountMismatch, len(before), len(after))
	}

	return nil
}

func (d *Driver) printListing(title, dir string) ([]string, error) {
	names, err := ListFiles(d.FS, dir, d.Ext)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(d.Out, title)
	for _, name := range names {
		fmt.Fprintf(d.Out, "  %s\n", name)
	}
	return names, nil
}

func (d *Driver) cleanup(dir string) error {
	if d.Keep {
		fmt.Fprintf(d.Out, "\nKeeping test directory: %s\n", dir)
		return nil
	}

	fmt.Fprintf(d.Out, "\nCleaning up test directory: %s\n", dir)
	if err := d.FS.RemoveAll(dir); err != nil {
		logger.Warn("could not remove test directory", "dir", dir, "err", err)
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return nil
}
