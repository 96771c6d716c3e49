// Package password provides one-way password hashing and verification
// backed by bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies user passwords. The cost parameter is
// injected at construction so production and tests can tune the work
// factor independently.
type Hasher struct {
	cost int
}

// NewHasher returns a bcrypt-backed Hasher. Costs outside the bcrypt
// range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. A malformed hash yields
// false rather than an error, so callers cannot distinguish a bad stored
// hash from a wrong password.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
