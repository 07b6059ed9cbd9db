package ports

// PasswordHasher is a pluggable one-way hashing strategy. Digests are
// self-contained: algorithm parameters and salt are embedded so Verify needs
// nothing beyond the digest itself.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. The final comparison
	// must not leak timing correlated with matching prefix length.
	Verify(plaintext, digest string) bool
}

// TokenIssuer generates opaque bearer tokens. Implementations must draw from
// a cryptographically secure random source with at least 128 bits of entropy.
type TokenIssuer interface {
	Generate() (string, error)
}
