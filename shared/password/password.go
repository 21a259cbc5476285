package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates anything past 72 bytes.
const maxLength = 72

var ErrInvalidPassword = errors.New("invalid password")

// Hash returns the bcrypt digest of the plaintext password.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password cannot be empty")
	}

	if len(plain) > maxLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxLength)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether the plaintext password produced the stored digest.
// A mismatch comes back as ErrInvalidPassword so callers can map it to an
// authentication failure without inspecting bcrypt internals.
func Verify(plain, digest string) error {
	if plain == "" || digest == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
