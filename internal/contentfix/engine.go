// Package contentfix normalizes text-file contents to UTF-8. A file is
// rewritten in place only when a legacy encoding is detected; binary files
// and files already in the target encoding are left untouched.
package contentfix

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/XiFenM/encoding-fixer/internal/charset"
	"github.com/XiFenM/encoding-fixer/internal/safefileio"
)

// binarySniffSize is the number of leading bytes inspected for the NUL-byte
// binary heuristic. This is a sniff, not a format parse.
const binarySniffSize = 1024

// Record documents one content rewrite: the file path, the detected source
// encoding, and the target encoding. Records are immutable once appended.
type Record struct {
	Path string
	From string
	To   string
}

// Engine repairs one file's byte content per call. The rewrite is
// destructive: the original bytes are not retained, so callers wanting
// rollback must snapshot externally.
type Engine struct {
	detector charset.Detector
	records  []Record
}

// NewEngine creates a content repair engine. A nil detector defaults to the
// statistical prober.
func NewEngine(detector charset.Detector) *Engine {
	if detector == nil {
		detector = charset.NewProber()
	}
	return &Engine{detector: detector}
}

// Repair inspects the file at path and rewrites its content as UTF-8 when a
// legacy encoding is detected. It returns whether the file was changed.
// Binary files, empty files, files with no detectable encoding, and files
// already in UTF-8 are skipped with (false, nil). I/O failures are returned
// to the caller, which treats them as non-fatal for the overall scan.
func (e *Engine) Repair(path string) (bool, error) {
	content, err := safefileio.SafeReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if isBinary(content) {
		return false, nil
	}

	detected, ok := e.detector.Detect(content)
	if !ok || charset.IsUTF8Name(detected) {
		// Inconclusive detection and already-target content are normal
		// outcomes: no wasted rewrite.
		return false, nil
	}

	enc, err := charset.Lookup(detected)
	if err != nil {
		slog.Debug("no decoder for detected encoding",
			"path", path, "encoding", detected)
		return false, nil
	}

	// Lossy decode: unmappable byte sequences become placeholders, never a
	// failure of the whole file.
	decoded := []byte(charset.DecodeLossy(enc, content))
	if bytes.Equal(decoded, content) {
		return false, nil
	}

	if err := safefileio.SafeOverwriteFile(path, decoded); err != nil {
		return false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}

	e.records = append(e.records, Record{
		Path: path,
		From: detected,
		To:   charset.TargetEncoding,
	})
	slog.Info("fixed content encoding",
		"path", path, "from", detected, "to", charset.TargetEncoding)
	return true, nil
}

// Records returns the ordered audit log of content rewrites.
func (e *Engine) Records() []Record {
	out := make([]Record, len(e.records))
	copy(out, e.records)
	return out
}

// isBinary applies the NUL-byte heuristic to the first binarySniffSize bytes.
func isBinary(content []byte) bool {
	sample := content
	if len(sample) > binarySniffSize {
		sample = sample[:binarySniffSize]
	}
	return bytes.IndexByte(sample, 0x00) >= 0
}
