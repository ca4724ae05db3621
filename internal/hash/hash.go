// Package hash fingerprints BOM contents.
//
// The fingerprint is reported in run summaries so two feeder lists can be
// traced back to the same (or a different) BOM revision. The package provides
// an xxh3 implementation and a fake for testing.
package hash

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// Hash returns a hex fingerprint of data.
	Hash(data []byte) string
}

// XXH3Hasher implements Hasher using 64-bit xxh3.
type XXH3Hasher struct{}

// NewXXH3Hasher creates a new XXH3Hasher.
func NewXXH3Hasher() *XXH3Hasher {
	return &XXH3Hasher{}
}

// Hash returns the 16-digit hex xxh3 digest of data.
func (h *XXH3Hasher) Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for specific content.
func (h *FakeHasher) SetHash(content, hash string) {
	h.hashes[content] = hash
}

// Hash returns the predetermined hash for data.
func (h *FakeHasher) Hash(data []byte) string {
	if hash, ok := h.hashes[string(data)]; ok {
		return hash
	}
	return "fakehash"
}
