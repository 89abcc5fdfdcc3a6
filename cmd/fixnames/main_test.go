package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RenamesEscapedEntries(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "#U6d4b#U8bd5#U6587#U4ef6#U5939")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "#U51b2#U950b#U7ebf.txt"), []byte("x\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Fixed 2 filename encoding issues:")

	_, err := os.Lstat(filepath.Join(dir, "测试文件夹", "冲锋线.txt"))
	assert.NoError(t, err)
}

func TestRun_ContentIsNeverTouched(t *testing.T) {
	dir := t.TempDir()
	latin1 := []byte{0x63, 0x61, 0x66, 0xE9, 0x0A}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.txt"), latin1, 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	content, err := os.ReadFile(filepath.Join(dir, "plain.txt"))
	require.NoError(t, err)
	assert.Equal(t, latin1, content)
}

func TestRun_NoFoldersFlag(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "#U6587#U4ef6")
	require.NoError(t, os.Mkdir(sub, 0o755))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-no-folders", dir}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	_, err := os.Lstat(sub)
	assert.NoError(t, err)
}

func TestRun_MissingDirectory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "does not exist")
}
