// Package types defines the shared interfaces used across devopstemplate.
package types

import (
	"io/fs"
)

// FS abstracts filesystem operations for testability
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// BuildConfigurer rewrites variable assignments inside one generated
// build-description file after installation. The file grammar is owned by the
// implementation; callers only hand over a variable to value mapping.
type BuildConfigurer interface {
	Configure(vars map[string]string) error
}
