package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiFenM/encoding-fixer/internal/common"
	"github.com/XiFenM/encoding-fixer/internal/contentfix"
	"github.com/XiFenM/encoding-fixer/internal/namefix"
)

// fixedDetector always reports the configured encoding
type fixedDetector struct {
	name string
	ok   bool
}

func (d *fixedDetector) Detect([]byte) (string, bool) { return d.name, d.ok }

func newTestScanner(opts Options, detector *fixedDetector) *Scanner {
	fs := common.NewDefaultFileSystem()
	names := namefix.NewEngine(fs)
	var contents *contentfix.Engine
	if detector != nil {
		contents = contentfix.NewEngine(detector)
	}
	return NewScanner(fs, names, contents, opts)
}

func TestScanner_CleanTreeIsNoOp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("plain\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("also plain\n"), 0o644))

	scanner := newTestScanner(Options{FixFolders: true}, &fixedDetector{name: "UTF-8", ok: true})
	summary, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ItemsProcessed)
	assert.False(t, summary.Changed())
}

func TestScanner_RenamesFileAndRewritesContent(t *testing.T) {
	root := t.TempDir()
	latin1 := []byte{0x63, 0x61, 0x66, 0xE9, 0x0A} // "café\n" in Latin-1
	require.NoError(t, os.WriteFile(filepath.Join(root, "cafÃ©.txt"), latin1, 0o644))

	scanner := newTestScanner(Options{}, &fixedDetector{name: "ISO-8859-1", ok: true})
	summary, err := scanner.Scan(root)
	require.NoError(t, err)

	// Renamed via the mojibake table, then content transcoded under the
	// repaired name.
	require.Len(t, summary.NameRepairs, 1)
	assert.Equal(t, filepath.Join(root, "café.txt"), summary.NameRepairs[0].NewPath)

	require.Len(t, summary.ContentRepairs, 1)
	assert.Equal(t, filepath.Join(root, "café.txt"), summary.ContentRepairs[0].Path)

	content, err := os.ReadFile(filepath.Join(root, "café.txt"))
	require.NoError(t, err)
	assert.Equal(t, "café\n", string(content))
	assert.True(t, utf8.Valid(content))
}

func TestScanner_DescendsIntoRenamedDirectory(t *testing.T) {
	root := t.TempDir()
	dirPath := filepath.Join(root, "#U6d4b#U8bd5#U6587#U4ef6#U5939")
	require.NoError(t, os.Mkdir(dirPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "#U51b2#U950b#U7ebf.txt"), []byte("x\n"), 0o644))

	scanner := newTestScanner(Options{FixFolders: true}, nil)
	summary, err := scanner.Scan(root)
	require.NoError(t, err)

	require.Len(t, summary.NameRepairs, 2)
	assert.Equal(t, filepath.Join(root, "测试文件夹"), summary.NameRepairs[0].NewPath)
	assert.Equal(t, filepath.Join(root, "测试文件夹", "冲锋线.txt"), summary.NameRepairs[1].NewPath)

	_, err = os.Lstat(filepath.Join(root, "测试文件夹", "冲锋线.txt"))
	assert.NoError(t, err)
}

func TestScanner_SkipFoldersOption(t *testing.T) {
	root := t.TempDir()
	dirPath := filepath.Join(root, "#U6587#U4ef6")
	require.NoError(t, os.Mkdir(dirPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "#U6d4b.txt"), []byte("x\n"), 0o644))

	scanner := newTestScanner(Options{FixFolders: false}, nil)
	summary, err := scanner.Scan(root)
	require.NoError(t, err)

	// The folder keeps its escaped name; the file inside is still fixed.
	require.Len(t, summary.NameRepairs, 1)
	assert.Equal(t, filepath.Join(dirPath, "测.txt"), summary.NameRepairs[0].NewPath)

	_, err = os.Lstat(dirPath)
	assert.NoError(t, err)
}

func TestScanner_NonTextFilesKeepTheirContent(t *testing.T) {
	root := t.TempDir()
	latin1 := []byte{0xE9, 0xE8, 0x0A}
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.bin"), latin1, 0o644))

	scanner := newTestScanner(Options{}, &fixedDetector{name: "ISO-8859-1", ok: true})
	summary, err := scanner.Scan(root)
	require.NoError(t, err)

	assert.Empty(t, summary.ContentRepairs)
	content, err := os.ReadFile(filepath.Join(root, "data.bin"))
	require.NoError(t, err)
	assert.Equal(t, latin1, content)
}

func TestScanner_MissingRootFails(t *testing.T) {
	scanner := newTestScanner(Options{}, nil)
	_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSummary_WriteReport(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		summary := &Summary{Root: "/tmp/x", ItemsProcessed: 5}
		summary.WriteReport(&buf)
		assert.Contains(t, buf.String(), "Items processed: 5")
		assert.Contains(t, buf.String(), "No encoding issues found!")
	})

	t.Run("with fixes", func(t *testing.T) {
		var buf bytes.Buffer
		summary := &Summary{
			Root:           "/tmp/x",
			ItemsProcessed: 2,
			NameRepairs: []namefix.RepairRecord{
				{OldPath: "/tmp/x/cafÃ©.txt", NewPath: "/tmp/x/café.txt"},
			},
			ContentRepairs: []contentfix.Record{
				{Path: "/tmp/x/café.txt", From: "ISO-8859-1", To: "utf-8"},
			},
		}
		summary.WriteReport(&buf)

		out := buf.String()
		assert.Contains(t, out, "Fixed 1 filename encoding issues:")
		assert.True(t, strings.Contains(out, "cafÃ©.txt -> "))
		assert.Contains(t, out, "Fixed 1 content encoding issues:")
		assert.Contains(t, out, "ISO-8859-1 -> utf-8")
		assert.NotContains(t, out, "No encoding issues found!")
	})
}
