package comparison

import (
	"crypto/md5" // #nosec G501 -- content fingerprinting, not authentication
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// HashAlgorithm defines the behavior of a content fingerprint algorithm.
// It allows for efficient streaming processing by accepting an io.Reader.
type HashAlgorithm interface {
	// Name returns the name of the algorithm (e.g., "md5").
	Name() string

	// Sum calculates the hash value of the data read from r and returns it
	// as a hexadecimal string.
	Sum(r io.Reader) (string, error)
}

// MD5 implements the HashAlgorithm interface for MD5 fingerprints. MD5 is
// the default because comparisons only need to detect accidental content
// drift, not resist adversaries.
type MD5 struct{}

// Name returns the algorithm name "md5".
func (m *MD5) Name() string {
	return "md5"
}

// Sum calculates the MD5 fingerprint of the data read from r.
func (m *MD5) Sum(r io.Reader) (string, error) {
	h := md5.New() // #nosec G401
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SHA256 implements the HashAlgorithm interface for SHA-256 fingerprints.
type SHA256 struct{}

// Name returns the algorithm name "sha256".
func (s *SHA256) Name() string {
	return "sha256"
}

// Sum calculates the SHA-256 fingerprint of the data read from r.
func (s *SHA256) Sum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// AlgorithmByName resolves an algorithm name to its implementation. The
// second return value is false for unknown names.
func AlgorithmByName(name string) (HashAlgorithm, bool) {
	switch name {
	case "md5":
		return &MD5{}, true
	case "sha256":
		return &SHA256{}, true
	default:
		return nil, false
	}
}
