package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and checks bcrypt password digests.
//
// Digests are self-describing: the algorithm version, cost and salt are
// encoded in the digest string, so a hasher with a different cost still
// verifies old digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost for new digests. A cost
// outside bcrypt's accepted range falls back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &PasswordHasher{cost: cost}
}

// Hash returns a salted digest of plain. Two calls with the same input
// return different digests.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether plain matches digest. A malformed or unsupported
// digest is reported as a mismatch.
func (h *PasswordHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
