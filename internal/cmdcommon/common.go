// Package cmdcommon provides common functionality for the command-line
// tools: target directory resolution, with an interactive fallback prompt
// when no path argument is given.
package cmdcommon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Error definitions shared by the command-line tools
var (
	// ErrPathNotFound is returned when the target path does not exist
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotADirectory is returned when the target path is not a directory
	ErrNotADirectory = errors.New("path is not a directory")
)

// CheckDirectory verifies that path exists and is a directory.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return nil
}

// ResolveTargetDirectory turns the positional argument into an absolute,
// verified directory path. When arg is empty, the user is prompted on
// stdout and the answer read from stdin; an empty answer selects the
// current directory.
func ResolveTargetDirectory(arg string, stdin io.Reader, stdout io.Writer) (string, error) {
	path := arg
	if path == "" {
		_, _ = fmt.Fprint(stdout, "Enter directory path to scan (default: current directory): ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read directory prompt: %w", err)
		}
		path = strings.TrimSpace(line)
		if path == "" {
			path = "."
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	if err := CheckDirectory(abs); err != nil {
		return "", err
	}
	return abs, nil
}
