// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
)

// bcryptPasswordService implements the adapter.PasswordService interface.
type bcryptPasswordService struct{}

// NewBcryptPasswordService creates a new password service instance.
func NewBcryptPasswordService() adapter.PasswordService {
	return &bcryptPasswordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 12.
func (s *bcryptPasswordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *bcryptPasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
func (s *bcryptPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return domainerror.NewValidationError(
			"password",
			domainerror.ErrCodePasswordTooShort,
			"Password must be at least 8 characters long",
			domainerror.ErrPasswordTooShort,
		)
	}
	return nil
}
