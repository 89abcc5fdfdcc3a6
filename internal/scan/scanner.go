// Package scan drives the repair engines over a directory tree. Traversal
// is strictly sequential: every entry is fully processed (name repair, then
// content repair when applicable) before the next is visited. When a
// directory is renamed, descent continues under the new name.
package scan

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/XiFenM/encoding-fixer/internal/common"
	"github.com/XiFenM/encoding-fixer/internal/contentfix"
	"github.com/XiFenM/encoding-fixer/internal/namefix"
)

// Options controls what a Scanner repairs.
type Options struct {
	// FixFolders includes directory names in name repair
	FixFolders bool

	// TextExtensions lists the file extensions (with leading dot,
	// case-insensitive) whose content is eligible for encoding repair
	TextExtensions []string
}

// DefaultTextExtensions returns the built-in list of recognized plain-text
// extensions.
func DefaultTextExtensions() []string {
	return []string{".txt"}
}

// Scanner walks a directory tree and applies the repair engines to every
// entry. Entries are visited in the native listing order of the filesystem;
// no explicit sort is imposed.
type Scanner struct {
	fs       common.FileSystem
	names    *namefix.Engine
	contents *contentfix.Engine
	opts     Options
}

// NewScanner creates a Scanner. The content engine may be nil, in which case
// file contents are never touched (name-only scans).
func NewScanner(fs common.FileSystem, names *namefix.Engine, contents *contentfix.Engine, opts Options) *Scanner {
	if len(opts.TextExtensions) == 0 {
		opts.TextExtensions = DefaultTextExtensions()
	}
	return &Scanner{
		fs:       fs,
		names:    names,
		contents: contents,
		opts:     opts,
	}
}

// Scan processes the tree rooted at root and returns a run summary. Only the
// root read can fail the scan; every per-entry failure is logged and skipped
// so a single unreadable entry never aborts the traversal.
func (s *Scanner) Scan(root string) (*Summary, error) {
	summary := &Summary{Root: root}
	if err := s.scanDir(root, summary); err != nil {
		return nil, err
	}
	summary.NameRepairs = s.names.Records()
	if s.contents != nil {
		summary.ContentRepairs = s.contents.Records()
	}
	return summary, nil
}

func (s *Scanner) scanDir(dir string, summary *Summary) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if dir == summary.Root {
			return err
		}
		slog.Warn("cannot read directory, skipping", "path", dir, "error", err)
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		summary.ItemsProcessed++

		if entry.IsDir() {
			if s.opts.FixFolders {
				// A successful rename invalidates the old handle; descend
				// using the returned name.
				name, _ = s.names.RepairName(dir, name)
			}
			if err := s.scanDir(filepath.Join(dir, name), summary); err != nil {
				return err
			}
			continue
		}

		name, _ = s.names.RepairName(dir, name)

		if s.contents != nil && s.isTextFile(name) {
			path := filepath.Join(dir, name)
			if _, err := s.contents.Repair(path); err != nil {
				slog.Warn("content repair failed, skipping file",
					"path", path, "error", err)
			}
		}
	}
	return nil
}

// isTextFile reports whether name carries a recognized plain-text extension.
func (s *Scanner) isTextFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range s.opts.TextExtensions {
		if ext == strings.ToLower(known) {
			return true
		}
	}
	return false
}
