// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
)

// passwordService implements adapter.PasswordService with bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return passwordService{}
}

func (passwordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength enforces the minimum length. bcrypt silently
// truncates inputs past 72 bytes, so overly long passwords are rejected too.
func (passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > 72 {
		return errors.New("password must be at most 72 characters long")
	}
	return nil
}
