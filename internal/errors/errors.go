// Package errors defines sentinel errors shared across xhtmlren packages.
package errors

import "errors"

var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrCollision         = errors.New("target name collision")
	ErrInvalidTarget     = errors.New("invalid target name")
	ErrUnknownConvention = errors.New("unknown naming convention")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrRenameFailed      = errors.New("rename failed")
	ErrCountMismatch     = errors.New("file count changed during rename")
)
