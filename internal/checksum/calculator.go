package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing content checksums.
// This abstraction allows for different checksum algorithms.
type Calculator interface {
	// Calculate computes a checksum of the unmodified content.
	Calculate(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// Calculate computes the hex-encoded SHA-256 of content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
