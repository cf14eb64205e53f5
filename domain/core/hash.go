package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
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

// Domain-specific hash types
type (
	// Fingerprint identifies the exact statistical content of a profile.
	Fingerprint Hash
	// RowHash identifies the cell content of a single table row.
	RowHash Hash
)

// Constructors
func NewFingerprint(data []byte) Fingerprint { return Fingerprint(NewHash(data)) }

// String conversions
func (h Fingerprint) String() string { return Hash(h).String() }
func (h RowHash) String() string     { return Hash(h).String() }

// ComputeRowHash hashes the formatted cells of a row. Cells are joined with
// a unit separator so adjacent cells cannot collide by concatenation.
func ComputeRowHash(cells []string) RowHash {
	var data strings.Builder
	for i, cell := range cells {
		if i > 0 {
			data.WriteByte(0x1f)
		}
		data.WriteString(cell)
	}
	return RowHash(NewHash([]byte(data.String())))
}
