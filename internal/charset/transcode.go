package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedEncoding indicates no decoder is available for an encoding name
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// TargetEncoding is the universal encoding all repaired content converges on
const TargetEncoding = "utf-8"

// IsUTF8Name reports whether name labels the target encoding, case-insensitively.
func IsUTF8Name(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == "utf-8" || name == "utf8"
}

// Lookup resolves an encoding name to a decoder/encoder pair. It accepts
// IANA names and aliases ("latin1", "ISO-8859-1", "Shift_JIS"), WHATWG
// labels ("gbk", "big5"), and detector spellings such as "GB-18030".
// The IANA index is consulted first so that "latin1" resolves to ISO-8859-1
// rather than the WHATWG windows-1252 superset.
func Lookup(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc, nil
	}
	// Detector names like "GB-18030" hyphenate where the WHATWG label does
	// not; retry with hyphens stripped.
	if enc, err := htmlindex.Get(strings.ReplaceAll(name, "-", "")); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// DecodeLossy decodes data using enc, substituting U+FFFD for any byte
// sequence that cannot be mapped. It is total: individual bad bytes never
// fail the whole buffer.
func DecodeLossy(enc encoding.Encoding, data []byte) string {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// Decoders for the encodings used here substitute rather than fail,
		// but guard against transformer errors anyway.
		return strings.ToValidUTF8(string(out), string(utf8.RuneError))
	}
	return string(out)
}

// DecodeDiscard decodes data using enc, discarding unmappable bytes instead
// of substituting a placeholder. Used by the brute-force filename recovery,
// which mirrors a decode-with-ignore-errors policy.
func DecodeDiscard(enc encoding.Encoding, data []byte) string {
	decoded := DecodeLossy(enc, data)
	if !strings.ContainsRune(decoded, utf8.RuneError) {
		return decoded
	}
	var sb strings.Builder
	sb.Grow(len(decoded))
	for _, r := range decoded {
		if r != utf8.RuneError {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Latin1Bytes recovers the raw byte representation of a name the way a
// Latin-1 reinterpretation would see it. For invalid UTF-8 the name's bytes
// are already the raw bytes; for valid UTF-8 every rune must fit in a single
// Latin-1 byte, otherwise the reinterpretation is not applicable.
func Latin1Bytes(name string) ([]byte, bool) {
	if !utf8.ValidString(name) {
		return []byte(name), true
	}
	out := make([]byte, 0, len(name))
	for _, r := range name {
		if r > 0xFF {
			return nil, false
		}
		out = append(out, byte(r))
	}
	return out, true
}
