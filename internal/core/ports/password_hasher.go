package ports

// PasswordHasher computes a salted one-way hash of a plaintext password and
// verifies a plaintext against a stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
