// Package common provides shared interfaces and utilities used across the
// encoding fixer packages.
//
//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import (
	"io/fs"
	"os"
)

// FileSystem defines the interface for file system operations used by the
// repair engines and the traversal driver. The interface allows for easy
// mocking in tests and provides a consistent API across all packages.
type FileSystem interface {
	// Lstat returns file information without following symlinks
	Lstat(path string) (fs.FileInfo, error)

	// FileExists checks if a file or directory exists
	FileExists(path string) (bool, error)

	// IsDir checks if the path is a directory
	IsDir(path string) (bool, error)

	// Rename renames (moves) a file or directory
	Rename(oldPath, newPath string) error

	// ReadDir reads the directory named by path and returns its entries in
	// the order provided by the underlying directory read (no sorting)
	ReadDir(path string) ([]fs.DirEntry, error)
}

// DefaultFileSystem implements FileSystem using standard os package functions
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// Lstat returns file information without following symlinks
func (f *DefaultFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// FileExists checks if a file or directory exists
func (f *DefaultFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// IsDir checks if the path is a directory
func (f *DefaultFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// Rename renames (moves) a file or directory
func (f *DefaultFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// ReadDir reads the directory named by path. Unlike os.ReadDir it does not
// sort the entries; the traversal contract is the native listing order of
// the filesystem.
func (f *DefaultFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dir.Close() }()
	return dir.ReadDir(-1)
}
