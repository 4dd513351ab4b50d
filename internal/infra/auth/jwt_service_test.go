package auth

import (
	"context"
	"testing"
	"time"

	"dashboard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		JWTSecret: "test_platform_secret_key_very_long_for_testing",
		TokenTTL:  ttl,
	}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.GenerateAccessToken("user-123", "mei@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "mei@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, time.Hour, svc.AccessTokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: "another_secret_that_is_also_long_enough"}})
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken("user-123", "")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-123"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":         "not-a-token",
		"wrong secret":    foreign,
		"alg none":        noneToken,
		"missing sub":     noSubject,
		"empty string":    "",
		"truncated token": foreign[:len(foreign)-4],
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken("user-123", "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(context.Background(), token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RequiresSubject(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	_, err := svc.GenerateAccessToken("", "x@example.com")

	assert.Error(t, err)
}
