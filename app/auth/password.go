package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when callers have no
// reason to pick another one.
const DefaultCost = 12

// ErrEmptySecret is returned when a blank secret is offered for hashing.
var ErrEmptySecret = errors.New("auth: secret is empty")

// HashPassword hashes a secret using bcrypt with the given cost.
// A cost below bcrypt's minimum falls back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptySecret
	}
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash reports whether the secret matches the stored hash.
// Any failure, including a malformed hash, reads as "not authenticated".
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
