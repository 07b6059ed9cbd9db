package crypto

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	digest, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret123" {
		t.Fatalf("digest equals plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("digest missing bcrypt prefix: %q", digest)
	}

	if !h.Verify("secret123", digest) {
		t.Fatalf("Verify rejected the correct password")
	}
	if h.Verify("secret124", digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(4)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two digests of the same password are identical; salt missing")
	}
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("pw", digest) {
		t.Fatalf("Verify failed after cost fallback")
	}
}

func TestRandTokenIssuer_Format(t *testing.T) {
	issuer := NewRandTokenIssuer()

	token, err := issuer.Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(token) != tokenBytes*2 {
		t.Fatalf("expected %d hex chars, got %d", tokenBytes*2, len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}
}

func TestRandTokenIssuer_NoCollisions(t *testing.T) {
	issuer := NewRandTokenIssuer()

	// With 256 bits of entropy any collision here means the random source
	// is broken, not unlucky.
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token, err := issuer.Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = struct{}{}
	}
}
