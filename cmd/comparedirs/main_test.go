package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun_IdenticalDirectories(t *testing.T) {
	ref := makeTree(t, map[string]string{"a.txt": "same\n"})
	cand := makeTree(t, map[string]string{"a.txt": "same\n"})

	var stdout, stderr bytes.Buffer
	code := run([]string{ref, cand}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Identical: 1")
	assert.Contains(t, stdout.String(), "Algorithm: md5")
}

func TestRun_ReportsDifferences(t *testing.T) {
	ref := makeTree(t, map[string]string{"a.txt": "old\n", "b.txt": "only here\n"})
	cand := makeTree(t, map[string]string{"a.txt": "new!\n"})

	var stdout, stderr bytes.Buffer
	code := run([]string{ref, cand}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stdout.String(), "Missing in candidate: 1")
	assert.Contains(t, stdout.String(), "- b.txt")
	assert.Contains(t, stdout.String(), "Different: 1")
}

func TestRun_SHA256Flag(t *testing.T) {
	ref := makeTree(t, map[string]string{"a.txt": "x\n"})
	cand := makeTree(t, map[string]string{"a.txt": "x\n"})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-algo", "sha256", ref, cand}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Algorithm: sha256")
}

func TestRun_FilterSizeComparison(t *testing.T) {
	ref := makeTree(t, map[string]string{"朝花夕拾 scan.pdf": "12345"})
	cand := makeTree(t, map[string]string{"repaired 朝花夕拾.pdf": "1234567"})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-filter", "朝花夕拾", ref, cand}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stdout.String(), "differs by 2 bytes")
}

func TestRun_ArgumentErrors(t *testing.T) {
	t.Run("wrong arg count", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{t.TempDir()}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "exactly two directory arguments")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-algo", "crc32", t.TempDir(), t.TempDir()}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "unknown hash algorithm")
	})

	t.Run("missing directory", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{filepath.Join(t.TempDir(), "gone"), t.TempDir()}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "does not exist")
	})
}
