package comparison

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestComparator_IdenticalTrees(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "a.txt", "same content\n")
	writeFile(t, cand, "a.txt", "same content\n")

	results, err := NewComparator(ref, cand, nil, Options{}).CompareFiles()
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Identical())
	assert.True(t, results[0].SizeMatch)
	assert.True(t, results[0].HashMatch)
	assert.Equal(t, results[0].RefHash, results[0].CandHash)
	assert.NotEmpty(t, results[0].RefHash)
}

func TestComparator_DetectsMissingAndDifferent(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "missing.txt", "only here\n")
	writeFile(t, ref, "changed.txt", "old version\n")
	writeFile(t, cand, "changed.txt", "new version!\n")

	comparator := NewComparator(ref, cand, nil, Options{})
	results, err := comparator.CompareFiles()
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]*Result{}
	for _, r := range results {
		byName[r.FileName] = r
	}

	assert.False(t, byName["missing.txt"].ExistsInNew)
	assert.False(t, byName["missing.txt"].Identical())
	// Missing counterpart must not trigger hashing.
	assert.Empty(t, byName["missing.txt"].RefHash)

	changed := byName["changed.txt"]
	assert.True(t, changed.ExistsInNew)
	assert.False(t, changed.SizeMatch)
	assert.False(t, changed.Identical())
}

func TestComparator_SameSizeDifferentContent(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "a.txt", "aaaa\n")
	writeFile(t, cand, "a.txt", "bbbb\n")

	results, err := NewComparator(ref, cand, nil, Options{}).CompareFiles()
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].SizeMatch)
	assert.False(t, results[0].HashMatch)
	assert.False(t, results[0].Identical())
}

func TestComparator_ExtensionFilterIsCaseInsensitive(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "a.TXT", "x\n")
	writeFile(t, ref, "b.pdf", "y\n")
	writeFile(t, cand, "a.TXT", "x\n")

	results, err := NewComparator(ref, cand, nil, Options{}).CompareFiles()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a.TXT", results[0].FileName)
}

func TestComparator_FilteredSizeComparison(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "archive 古籍 v1.pdf", "12345")
	writeFile(t, cand, "古籍 repaired.pdf", "1234567")
	writeFile(t, cand, "unrelated.pdf", "zz")

	comparator := NewComparator(ref, cand, nil, Options{FilterPattern: "古籍"})
	result, err := comparator.CompareFiltered()
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.SizeMatch)
	assert.Equal(t, int64(2), result.Difference())
}

func TestComparator_FilteredSkippedWhenUnconfigured(t *testing.T) {
	comparator := NewComparator(t.TempDir(), t.TempDir(), nil, Options{})
	result, err := comparator.CompareFiltered()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestComparator_FilteredMissingOnEitherSide(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "book.pdf", "x")

	comparator := NewComparator(ref, cand, nil, Options{FilterPattern: "book"})
	result, err := comparator.CompareFiltered()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestComparator_MissingReferenceDirFails(t *testing.T) {
	comparator := NewComparator(filepath.Join(t.TempDir(), "gone"), t.TempDir(), nil, Options{})
	_, err := comparator.CompareFiles()
	assert.Error(t, err)
}

func TestComparator_RunReport(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "same.txt", "ok\n")
	writeFile(t, cand, "same.txt", "ok\n")
	writeFile(t, ref, "gone.txt", "only old\n")

	report, err := NewComparator(ref, cand, &SHA256{}, Options{}).Run()
	require.NoError(t, err)

	total, identical, missing, different := report.Counts()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, identical)
	assert.Equal(t, 1, missing)
	assert.Equal(t, 0, different)
	assert.False(t, report.Clean())

	var buf bytes.Buffer
	report.Write(&buf)
	out := buf.String()
	assert.Contains(t, out, "Algorithm: sha256")
	assert.Contains(t, out, "Missing in candidate: 1")
	assert.Contains(t, out, "- gone.txt")
}

func TestReport_CleanRun(t *testing.T) {
	ref := t.TempDir()
	cand := t.TempDir()
	writeFile(t, ref, "a.txt", "x\n")
	writeFile(t, cand, "a.txt", "x\n")

	report, err := NewComparator(ref, cand, nil, Options{}).Run()
	require.NoError(t, err)
	assert.True(t, report.Clean())

	var buf bytes.Buffer
	report.Write(&buf)
	assert.Contains(t, buf.String(), "Identical: 1")
}
