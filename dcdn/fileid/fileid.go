package fileid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	// Length of a generated identifier in hex characters.
	IDLength = 16

	// Random bytes drawn per identifier before hashing.
	entropyBytes = 32
)

// RandSource returns n cryptographically strong random bytes. A failing
// source must fail the whole operation, never degrade silently.
type RandSource func(n int) ([]byte, error)

func cryptoRand(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Generator produces fresh printable file identifiers by hashing a block of
// random bytes and keeping a fixed-length hex prefix. Hashing decouples the
// output alphabet and length from the raw entropy size.
type Generator struct {
	source RandSource
}

func NewGenerator() *Generator {
	return &Generator{source: cryptoRand}
}

// NewGeneratorWithSource is used by tests to make id generation deterministic.
func NewGeneratorWithSource(source RandSource) *Generator {
	return &Generator{source: source}
}

func (g *Generator) Generate() (string, error) {
	raw, err := g.source(entropyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to read randomness: %w", err)
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])[:IDLength], nil
}
