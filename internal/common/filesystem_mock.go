package common

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// MockFileSystem implements FileSystem for testing. Entries are tracked in
// an in-memory map keyed by cleaned path.
type MockFileSystem struct {
	entries map[string]*MockFileInfo

	// RenameErr, if non-nil, is returned by every Rename call. This is used
	// to test the engines' handling of rename I/O failures.
	RenameErr error

	// RenameCalls records every (old, new) pair passed to Rename.
	RenameCalls [][2]string
}

// NewMockFileSystem creates an empty MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		entries: make(map[string]*MockFileInfo),
	}
}

// MockFileInfo implements fs.FileInfo for testing
type MockFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

// Name returns the base name of the file
func (m *MockFileInfo) Name() string { return m.name }

// Size returns the length in bytes
func (m *MockFileInfo) Size() int64 { return m.size }

// Mode returns the file mode bits
func (m *MockFileInfo) Mode() os.FileMode { return m.mode }

// ModTime returns the modification time
func (m *MockFileInfo) ModTime() time.Time { return m.modTime }

// IsDir reports whether m describes a directory
func (m *MockFileInfo) IsDir() bool { return m.isDir }

// Sys returns nil for the mock
func (m *MockFileInfo) Sys() any { return nil }

// AddFile registers a regular file at path
func (m *MockFileSystem) AddFile(path string, size int64) {
	path = filepath.Clean(path)
	m.entries[path] = &MockFileInfo{
		name:    filepath.Base(path),
		size:    size,
		mode:    0o644,
		modTime: time.Now(),
	}
}

// AddDir registers a directory at path
func (m *MockFileSystem) AddDir(path string) {
	path = filepath.Clean(path)
	m.entries[path] = &MockFileInfo{
		name:    filepath.Base(path),
		mode:    0o755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

// Lstat returns file information for the mock entry
func (m *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	info, ok := m.entries[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return info, nil
}

// FileExists checks if a mock entry exists
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	_, ok := m.entries[filepath.Clean(path)]
	return ok, nil
}

// IsDir checks if the mock entry is a directory
func (m *MockFileSystem) IsDir(path string) (bool, error) {
	info, ok := m.entries[filepath.Clean(path)]
	if !ok {
		return false, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return info.isDir, nil
}

// Rename moves a mock entry, honoring RenameErr if set
func (m *MockFileSystem) Rename(oldPath, newPath string) error {
	m.RenameCalls = append(m.RenameCalls, [2]string{oldPath, newPath})
	if m.RenameErr != nil {
		return m.RenameErr
	}
	oldPath = filepath.Clean(oldPath)
	newPath = filepath.Clean(newPath)
	info, ok := m.entries[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	delete(m.entries, oldPath)
	info.name = filepath.Base(newPath)
	m.entries[newPath] = info
	return nil
}

// ReadDir returns the direct children of path in insertion-independent
// (map iteration) order, matching the unsorted contract of FileSystem.ReadDir.
func (m *MockFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	path = filepath.Clean(path)
	info, ok := m.entries[path]
	if !ok || !info.isDir {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	var out []fs.DirEntry
	for p, e := range m.entries {
		if filepath.Dir(p) == path {
			out = append(out, fs.FileInfoToDirEntry(e))
		}
	}
	return out, nil
}
