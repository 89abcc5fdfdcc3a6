// Package comparison verifies that a repaired directory still carries the
// same content as the untouched original. Files matched by extension in the
// reference directory are looked up by name in the candidate directory and
// compared by size and content fingerprint; an optional name-filtered set is
// compared by size alone, for large binaries where hashing is not worth the
// cost.
package comparison

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Result describes the comparison of a single file present in the reference
// directory.
type Result struct {
	FileName    string
	RefPath     string
	CandPath    string
	ExistsInNew bool
	SizeMatch   bool
	HashMatch   bool
	RefSize     int64
	CandSize    int64
	RefHash     string
	CandHash    string
}

// Identical reports whether both size and fingerprint matched.
func (r *Result) Identical() bool {
	return r.ExistsInNew && r.SizeMatch && r.HashMatch
}

// SizeResult describes a size-only comparison of one filtered file pair.
type SizeResult struct {
	RefPath   string
	CandPath  string
	RefSize   int64
	CandSize  int64
	SizeMatch bool
}

// Difference returns the absolute size difference in bytes.
func (r *SizeResult) Difference() int64 {
	d := r.RefSize - r.CandSize
	if d < 0 {
		return -d
	}
	return d
}

// Options controls which files a Comparator examines.
type Options struct {
	// Extension selects the files compared by fingerprint (with leading
	// dot, case-insensitive). Defaults to ".txt".
	Extension string

	// FilterPattern, when non-empty, selects an additional set of files
	// whose name contains the pattern and whose extension is FilterExt;
	// these are compared by size only.
	FilterPattern string

	// FilterExt is the extension for the size-only set. Defaults to ".pdf".
	FilterExt string
}

// Comparator compares the files of a reference directory against a
// candidate directory.
type Comparator struct {
	refDir  string
	candDir string
	algo    HashAlgorithm
	opts    Options

	results []*Result
}

// NewComparator creates a Comparator over the two directories. A nil algo
// selects MD5.
func NewComparator(refDir, candDir string, algo HashAlgorithm, opts Options) *Comparator {
	if algo == nil {
		algo = &MD5{}
	}
	if opts.Extension == "" {
		opts.Extension = ".txt"
	}
	if opts.FilterExt == "" {
		opts.FilterExt = ".pdf"
	}
	return &Comparator{
		refDir:  refDir,
		candDir: candDir,
		algo:    algo,
		opts:    opts,
	}
}

// hashFile streams the file through the configured algorithm.
func (c *Comparator) hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return c.algo.Sum(f)
}

func fileSize(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// listByExt returns the names of regular files in dir carrying ext,
// case-insensitive, sorted as the directory listing yields them.
func listByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// CompareFiles compares every reference file with the configured extension
// against its same-named counterpart in the candidate directory. Hashes are
// only computed when the counterpart exists.
func (c *Comparator) CompareFiles() ([]*Result, error) {
	names, err := listByExt(c.refDir, c.opts.Extension)
	if err != nil {
		return nil, err
	}

	c.results = c.results[:0]
	for _, name := range names {
		refPath := filepath.Join(c.refDir, name)
		candPath := filepath.Join(c.candDir, name)

		result := &Result{
			FileName: name,
			RefPath:  refPath,
			RefSize:  fileSize(refPath),
		}

		if _, err := os.Lstat(candPath); err == nil {
			result.ExistsInNew = true
			result.CandPath = candPath
			result.CandSize = fileSize(candPath)
			result.SizeMatch = result.RefSize == result.CandSize

			if result.RefHash, err = c.hashFile(refPath); err != nil {
				return nil, err
			}
			if result.CandHash, err = c.hashFile(candPath); err != nil {
				return nil, err
			}
			result.HashMatch = result.RefHash == result.CandHash
		}

		c.results = append(c.results, result)
	}
	return c.results, nil
}

// findFiltered returns the first file in dir whose name contains the filter
// pattern and carries the filter extension.
func (c *Comparator) findFiltered(dir string) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, fmt.Errorf("read directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.Contains(e.Name(), c.opts.FilterPattern) &&
			strings.EqualFold(filepath.Ext(e.Name()), c.opts.FilterExt) {
			return filepath.Join(dir, e.Name()), true, nil
		}
	}
	return "", false, nil
}

// CompareFiltered compares the first filtered file of each directory by
// size. It returns nil without error when no filter pattern is configured
// or either side has no match.
func (c *Comparator) CompareFiltered() (*SizeResult, error) {
	if c.opts.FilterPattern == "" {
		return nil, nil
	}

	refPath, ok, err := c.findFiltered(c.refDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	candPath, ok, err := c.findFiltered(c.candDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	result := &SizeResult{
		RefPath:  refPath,
		CandPath: candPath,
		RefSize:  fileSize(refPath),
		CandSize: fileSize(candPath),
	}
	result.SizeMatch = result.RefSize == result.CandSize
	return result, nil
}

// Run performs both comparison passes and returns the rendered report.
func (c *Comparator) Run() (*Report, error) {
	results, err := c.CompareFiles()
	if err != nil {
		return nil, err
	}
	sizeResult, err := c.CompareFiltered()
	if err != nil {
		return nil, err
	}
	report := &Report{
		RefDir:    c.refDir,
		CandDir:   c.candDir,
		Algorithm: c.algo.Name(),
		Results:   results,
	}
	if sizeResult != nil {
		report.SizeResults = []*SizeResult{sizeResult}
	}
	return report, nil
}
