package namefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Apply(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"e acute", "cafÃ©.txt", "café.txt"},
		{"multiple occurrences", "Ã©Ã©", "éé"},
		{"mixed patterns", "rÃ©sumÃ¨.txt", "résumè.txt"},
		{"CJK pattern", "æ–‡ä»¶.txt", "文件.txt"},
		{"no patterns", "clean.txt", "clean.txt"},
		{"already repaired", "café.txt", "café.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Apply(tt.input))
		})
	}
}

func TestTable_ApplyIdempotent(t *testing.T) {
	table := DefaultTable()
	once := table.Apply("cafÃ© æ–‡ä»¶ Ã¼ber.txt")
	assert.Equal(t, once, table.Apply(once))
}

func TestTable_DeclaredOrder(t *testing.T) {
	// Overlapping patterns: the first table entry must win on the shared
	// prefix before the second is consulted.
	table := Table{
		{"ab", "X"},
		{"b", "Y"},
	}
	assert.Equal(t, "XY", table.Apply("abb"))
}

func TestTable_EmptyTableIsNoOp(t *testing.T) {
	var table Table
	assert.Equal(t, "cafÃ©.txt", table.Apply("cafÃ©.txt"))
}
