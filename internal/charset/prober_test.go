package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_EmptyBuffer(t *testing.T) {
	p := NewProber()
	name, ok := p.Detect(nil)
	assert.False(t, ok)
	assert.Empty(t, name)

	name, ok = p.Detect([]byte{})
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestProber_UTF8Text(t *testing.T) {
	p := NewProber()
	text := strings.Repeat("编码修复工具测试文本。Encoding repair test text.\n", 20)

	name, ok := p.Detect([]byte(text))
	require.True(t, ok)
	assert.True(t, IsUTF8Name(name), "expected a UTF-8 guess, got %q", name)
}

func TestProber_ArbitraryBytes(t *testing.T) {
	p := NewProber()

	// Detection may or may not produce a guess for noise; it must simply
	// not panic and must return a well-formed result.
	noise := make([]byte, 256)
	for i := range noise {
		noise[i] = byte(i)
	}
	name, ok := p.Detect(noise)
	if ok {
		assert.NotEmpty(t, name)
	}
}
