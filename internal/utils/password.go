package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns plaintext secrets into one-way salted digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashedPassword string) bool
}

// HashingError reports that the hashing primitive could not run. It points at
// misconfiguration (bad work factor) rather than bad user input.
type HashingError struct {
	Cost int
	Err  error
}

func (e *HashingError) Error() string {
	return fmt.Sprintf("failed to hash password (cost %d): %v", e.Cost, e.Err)
}

func (e *HashingError) Unwrap() error {
	return e.Err
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	// bcrypt silently raises a low cost to DefaultCost; refuse instead.
	if h.cost < bcrypt.MinCost || h.cost > bcrypt.MaxCost {
		return "", &HashingError{
			Cost: h.cost,
			Err:  fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost),
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", &HashingError{Cost: h.cost, Err: err}
	}
	return string(hashedPassword), nil
}

func (h *BcryptHasher) Verify(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
