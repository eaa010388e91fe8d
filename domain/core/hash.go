package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DatasetFingerprint identifies the exact bytes of a loaded catalog file.
// Two sessions over the same file report the same fingerprint.
type DatasetFingerprint Hash

// NewDatasetFingerprint hashes raw catalog file contents
func NewDatasetFingerprint(data []byte) DatasetFingerprint {
	return DatasetFingerprint(NewHash(data))
}

func (f DatasetFingerprint) String() string { return Hash(f).String() }

// Short returns the first 12 hex characters for display
func (f DatasetFingerprint) Short() string {
	s := Hash(f).String()
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
