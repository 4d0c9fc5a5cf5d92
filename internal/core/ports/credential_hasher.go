package ports

// CredentialHasher is the opaque one-way hashing capability the auth layer
// depends on. Implementations must salt (same plaintext yields different
// digests across calls) and compare in constant time.
type CredentialHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
