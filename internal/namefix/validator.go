package namefix

// IsClean reports whether name needs no repair: every byte must lie within
// the 7-bit ASCII range. This is intentionally strict and encoding-agnostic;
// it does not judge whether non-ASCII characters are "correct" Unicode.
func IsClean(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return false
		}
	}
	return true
}
