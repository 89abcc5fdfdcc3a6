// Package namefix repairs corrupted filesystem entry names. It decodes
// #U-escape placeholders, rewrites known mojibake byte patterns, and as a
// last resort reinterprets the name's raw bytes under a list of candidate
// legacy encodings. Renames are collision-safe: an existing destination is
// never overwritten.
package namefix

import (
	"regexp"
	"strconv"
)

// escapePattern matches "#U" followed by exactly 4 hexadecimal digits.
// Occurrences are non-overlapping by regexp semantics.
var escapePattern = regexp.MustCompile(`#U([0-9a-fA-F]{4})`)

// HasEscape reports whether name contains at least one #U-escape sequence.
func HasEscape(name string) bool {
	return escapePattern.MatchString(name)
}

// DecodeEscapes replaces every #U-escape sequence in name with the Unicode
// character whose code point equals the 4-digit hex value. The function is
// pure and total: a name without escapes is returned unchanged, and a match
// that fails to parse (which the pattern should preclude) is kept verbatim.
func DecodeEscapes(name string) string {
	if !HasEscape(name) {
		return name
	}
	return escapePattern.ReplaceAllStringFunc(name, func(match string) string {
		code, err := strconv.ParseUint(match[2:], 16, 32)
		if err != nil {
			return match
		}
		return string(rune(code))
	})
}
