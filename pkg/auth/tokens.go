package auth

// TokenIssuer abstracts identity token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(subject, userID string) (string, error)
}

// PasswordHasher abstracts credential hashing. Verify must report false
// for any mismatch, including a malformed stored hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
