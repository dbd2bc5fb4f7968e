// Package fs provides a file system abstraction for testing.
// The planner, the rename executor and the smoke driver all take an FS so
// they can be unit tested against MockFS without touching the disk.
package fs

import (
	"os"
)

// FS defines the interface for file system operations used by xhtmlren.
type FS interface {
	// ReadFile reads the entire file at path and returns its contents.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the file at path with the given permissions.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates all directories in the path.
	MkdirAll(path string, perm os.FileMode) error

	// MkdirTemp creates a new uniquely named directory in dir and returns its path.
	// An empty dir means the system temporary directory.
	MkdirTemp(dir, pattern string) (string, error)

	// ReadDir returns the entries of the directory sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)

	// Stat returns file info for the given path.
	Stat(path string) (os.FileInfo, error)

	// Remove removes the file or empty directory at path.
	Remove(path string) error

	// RemoveAll removes path and everything it contains.
	RemoveAll(path string) error

	// Rename renames oldpath to newpath.
	Rename(oldpath, newpath string) error
}

// RealFS implements FS using the actual operating system.
type RealFS struct{}

func (r *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (r *RealFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (r *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (r *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFS) Remove(path string) error {
	return os.Remove(path)
}

func (r *RealFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (r *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Default is the default RealFS instance for convenience.
var Default = &RealFS{}
