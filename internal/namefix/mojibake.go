package namefix

import "strings"

// Replacement is one (corrupted substring -> correct substring) pair of a
// mojibake repair table.
type Replacement struct {
	Garbled string
	Correct string
}

// Table is an ordered mojibake repair table. Patterns are applied in
// declared order; the order is part of the contract and must be preserved
// so overlapping patterns produce reproducible results. A Table is constant
// for the process lifetime and safe for concurrent use.
type Table []Replacement

// DefaultTable returns the built-in repair table: the UTF-8-read-as-Latin-1
// forms of common Western European accented characters plus a frequent CJK
// pattern.
func DefaultTable() Table {
	return Table{
		{"æ–‡ä»¶", "文件"},
		{"Ã©", "é"},
		{"Ã¨", "è"},
		{"Ã ", "à"},
		{"Ã±", "ñ"},
		{"Ã¤", "ä"},
		{"Ã¶", "ö"},
		{"Ã¼", "ü"},
	}
}

// Apply rewrites all occurrences of every table pattern in name, in table
// order. Pure and total; a name free of any pattern is returned unchanged,
// which also makes Apply idempotent on its own output for the default table.
func (t Table) Apply(name string) string {
	for _, r := range t {
		name = strings.ReplaceAll(name, r.Garbled, r.Correct)
	}
	return name
}
