package namefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain ascii", "report.txt", true},
		{"ascii with punctuation", "a_b-c (1).txt", true},
		{"escape sequences are ascii", "#U51b2.txt", true},
		{"empty", "", true},
		{"accented latin", "café.txt", false},
		{"CJK", "测试.txt", false},
		{"raw high byte", string([]byte{0x63, 0xE9}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsClean(tt.input))
		})
	}
}
