// Package safefileio provides the file I/O primitives used by the content
// repair engine: symlink-refusing reads and in-place rewrites. Content
// repair is a destructive overwrite, so the write path preserves the target
// inode's permissions and refuses anything that is not a regular file.
package safefileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// MaxFileSize is the maximum allowed file size for SafeReadFile (128 MB).
// Text files under repair are expected to be far smaller; the limit guards
// against memory exhaustion on misclassified inputs.
const MaxFileSize = 128 * 1024 * 1024

// SafeReadFile reads a regular file, refusing symlinks via O_NOFOLLOW and
// enforcing MaxFileSize. File properties are validated through the open
// descriptor so checks and reads cannot race.
func SafeReadFile(filePath string) ([]byte, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - absPath is cleaned above and opened with O_NOFOLLOW
	file, err := os.OpenFile(absPath, os.O_RDONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if isNoFollowError(err) {
			return nil, ErrIsSymlink
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	info, err := validateFile(file, absPath)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return content, nil
}

// SafeOverwriteFile replaces the content of an existing regular file in
// place. The file must already exist: content repair only rewrites files it
// has just read, it never creates new ones. Symlinks are refused via
// O_NOFOLLOW and the regular-file check happens on the open descriptor.
func SafeOverwriteFile(filePath string, content []byte) (err error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	// #nosec G304 - absPath is cleaned above and opened with O_NOFOLLOW
	file, err := os.OpenFile(absPath, os.O_WRONLY|syscall.O_NOFOLLOW, 0)
	if err != nil {
		if isNoFollowError(err) {
			return ErrIsSymlink
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if _, err := validateFile(file, absPath); err != nil {
		return err
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", absPath, err)
	}
	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("failed to write to %s: %w", absPath, err)
	}
	return nil
}

// validateFile checks that the open descriptor refers to a regular file.
func validateFile(file *os.File, filePath string) (os.FileInfo, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidFilePath, filePath)
	}
	return info, nil
}
