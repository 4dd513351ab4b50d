package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a session access token.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenService issues and validates access tokens signed with the platform secret.
type TokenService interface {
	TokenVerifier

	// GenerateAccessToken creates a signed access token for the identity.
	GenerateAccessToken(subject, email string) (string, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
