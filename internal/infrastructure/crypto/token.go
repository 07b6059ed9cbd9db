package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the raw entropy per token: 32 bytes = 256 bits, encoded as
// 64 hex characters.
const tokenBytes = 32

// RandTokenIssuer generates opaque bearer tokens from crypto/rand.
type RandTokenIssuer struct{}

func NewRandTokenIssuer() *RandTokenIssuer {
	return &RandTokenIssuer{}
}

// Generate returns a fresh random token. An entropy-source failure is an
// error; there is no weaker fallback.
func (i *RandTokenIssuer) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
