// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims carries the validated identity extracted from an access token.
type TokenClaims struct {
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens for the local account.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the given email.
	GenerateAccessToken(ctx context.Context, email string) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
