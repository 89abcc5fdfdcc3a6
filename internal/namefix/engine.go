package namefix

import (
	"log/slog"
	"path/filepath"

	"github.com/XiFenM/encoding-fixer/internal/charset"
	"github.com/XiFenM/encoding-fixer/internal/common"
)

// Outcome is the tagged result of a repair attempt. The "try next strategy"
// control flow is expressed through return values, not errors.
type Outcome int

const (
	// OutcomeNoChange means the name needed no repair or no strategy was
	// applicable. This is a normal terminal outcome, not an error.
	OutcomeNoChange Outcome = iota

	// OutcomeRenamed means a strategy produced a candidate and the rename
	// succeeded.
	OutcomeRenamed

	// OutcomeRejected means at least one strategy produced a candidate but
	// every candidate was rejected (collision or rename failure). The entry
	// is left unmodified.
	OutcomeRejected
)

// RepairRecord is an immutable (original, new) full-path pair recorded after
// each successful rename. Records are appended in order and never mutated.
type RepairRecord struct {
	OldPath string
	NewPath string
}

// defaultCandidates is the brute-force recovery priority list. Order is part
// of the contract: the first candidate producing an acceptable name wins.
var defaultCandidates = []string{
	"latin1",
	"windows-1252",
	"gbk",
	"gb2312",
	"big5",
}

// DefaultCandidateEncodings returns the built-in candidate encoding list for
// brute-force name recovery.
func DefaultCandidateEncodings() []string {
	out := make([]string, len(defaultCandidates))
	copy(out, defaultCandidates)
	return out
}

// Engine repairs a single filesystem entry name per call. Strategies run in
// strict priority order with first success winning: escape decoding, the
// mojibake table, then brute-force recoding under candidate legacy
// encodings. The engine only ever rewrites the leaf name, never the parent
// directory, and it never overwrites an existing entry.
//
// The existence check and the rename are two separate calls. That is safe
// under the sequential traversal model; a parallelized traversal would need
// an atomic check-and-rename instead.
type Engine struct {
	fs         common.FileSystem
	table      Table
	candidates []string
	records    []RepairRecord
}

// Option configures an Engine.
type Option func(*Engine)

// WithTable replaces the default mojibake table. A nil or empty table
// disables the mojibake strategy.
func WithTable(t Table) Option {
	return func(e *Engine) { e.table = t }
}

// WithCandidateEncodings replaces the default brute-force candidate list.
// A nil or empty list disables the brute-force strategy.
func WithCandidateEncodings(names []string) Option {
	return func(e *Engine) { e.candidates = names }
}

// NewEngine creates a name repair engine backed by fs.
func NewEngine(fs common.FileSystem, opts ...Option) *Engine {
	e := &Engine{
		fs:         fs,
		table:      DefaultTable(),
		candidates: DefaultCandidateEncodings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RepairName runs the strategy chain for the entry name inside dir. It
// returns the entry's current name after the attempt (the new name on
// success, the original otherwise) and the outcome. After a successful
// rename the caller must use the returned name; the old path no longer
// exists.
func (e *Engine) RepairName(dir, name string) (string, Outcome) {
	hasEscape := HasEscape(name)

	// Pure-ASCII names without escape sequences are clean and need no
	// repair. Escape sequences are themselves ASCII, so this check must not
	// short-circuit them.
	if !hasEscape && IsClean(name) {
		return name, OutcomeNoChange
	}

	attempted := false

	if hasEscape {
		if candidate := DecodeEscapes(name); candidate != name {
			attempted = true
			if e.tryRename(dir, name, candidate) {
				return candidate, OutcomeRenamed
			}
		}
	}

	if candidate := e.table.Apply(name); candidate != name {
		attempted = true
		if e.tryRename(dir, name, candidate) {
			return candidate, OutcomeRenamed
		}
	}

	if raw, ok := charset.Latin1Bytes(name); ok {
		for _, encName := range e.candidates {
			enc, err := charset.Lookup(encName)
			if err != nil {
				slog.Debug("skipping unknown candidate encoding",
					"encoding", encName, "error", err)
				continue
			}
			candidate := charset.DecodeDiscard(enc, raw)
			if candidate == "" || candidate == name {
				continue
			}
			attempted = true
			if e.tryRename(dir, name, candidate) {
				return candidate, OutcomeRenamed
			}
		}
	}

	if attempted {
		slog.Info("could not fix entry name", "name", name)
		return name, OutcomeRejected
	}
	return name, OutcomeNoChange
}

// tryRename attempts a collision-safe rename of oldName to newName inside
// dir. A rejected candidate (existing destination or I/O failure) returns
// false; the caller proceeds to the next strategy.
func (e *Engine) tryRename(dir, oldName, newName string) bool {
	oldPath := filepath.Join(dir, oldName)
	newPath := filepath.Join(dir, newName)

	exists, err := e.fs.FileExists(newPath)
	if err != nil {
		slog.Warn("cannot check rename target", "path", newPath, "error", err)
		return false
	}
	if exists {
		slog.Warn("target name already exists", "name", newName)
		return false
	}

	if err := e.fs.Rename(oldPath, newPath); err != nil {
		slog.Warn("rename failed", "old", oldName, "new", newName, "error", err)
		return false
	}

	e.records = append(e.records, RepairRecord{OldPath: oldPath, NewPath: newPath})
	slog.Info("fixed entry name", "old", oldName, "new", newName)
	return true
}

// Records returns the ordered audit log of successful renames.
func (e *Engine) Records() []RepairRecord {
	out := make([]RepairRecord, len(e.records))
	copy(out, e.records)
	return out
}
