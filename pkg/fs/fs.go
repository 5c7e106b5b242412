// Package fs provides the read-only file system operations the scanner
// performs against a project tree.
package fs

import (
	"io/fs"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// WalkDirFunc is the callback invoked for each entry visited by WalkDir.
type WalkDirFunc = fs.WalkDirFunc

// FS interface provides file system operations for project asset discovery.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// WalkDir walks the file tree rooted at root, calling fn for each entry.
	WalkDir(root string, fn WalkDirFunc) error

	// Glob finds files matching the pattern.
	Glob(pattern string) ([]string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)

	// IsNotExist checks if an error indicates that a file or directory doesn't exist.
	IsNotExist(err error) bool
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
