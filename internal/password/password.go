package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns raw passwords into one-way digests. It is an interface so the
// algorithm can be swapped without touching callers.
type Hasher interface {
	Hash(raw string) (string, error)
	Matches(raw string, digest string) bool
}

// BcryptHasher hashes with bcrypt. Each call salts independently, so the same
// password never produces the same digest twice, and comparison is constant
// time inside the library.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(raw string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Matches(raw string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
