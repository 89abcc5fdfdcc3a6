// Package charset provides text encoding detection and transcoding for the
// repair engines. Detection is a best-effort statistical guess; callers must
// not assume high accuracy and must treat an absent guess as a normal value.
package charset

import (
	"github.com/saintfish/chardet"
)

// Detector is the interface consumed by the content repair engine. It allows
// tests to substitute a deterministic detector for the statistical one.
type Detector interface {
	// Detect returns the name of the most probable text encoding of data,
	// or ok=false if the buffer is empty or unrecognizable.
	Detect(data []byte) (name string, ok bool)
}

// Prober implements Detector using a character-frequency/byte-pattern
// heuristic. It never fails on malformed input; unrecognizable buffers
// simply produce no guess.
type Prober struct {
	detector *chardet.Detector
}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{detector: chardet.NewTextDetector()}
}

// Detect returns the best-guess encoding name for data. The guess is not
// cached: each file's encoding is independent and detection is cheap
// relative to the surrounding I/O.
func (p *Prober) Detect(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	result, err := p.detector.DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return "", false
	}
	return result.Charset, true
}

// compile-time check
var _ Detector = (*Prober)(nil)
