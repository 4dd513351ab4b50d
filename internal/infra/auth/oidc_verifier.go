package auth

import (
	"context"

	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

// oidcVerifier validates tokens issued by the hosted auth platform through OIDC discovery and JWKS.
type oidcVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the issuer and returns a verifier bound to audience.
// An empty audience skips the audience check.
func NewOIDCVerifier(ctx context.Context, issuerURL, audience string) (service.TokenVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, errors.Wrap(err, "oidc provider discovery")
	}

	return newOIDCVerifier(provider.Verifier(&oidc.Config{
		ClientID:          audience,
		SkipClientIDCheck: audience == "",
	})), nil
}

func newOIDCVerifier(verifier *oidc.IDTokenVerifier) *oidcVerifier {
	return &oidcVerifier{verifier: verifier}
}

// Verify checks the token signature against the issuer's keys and maps its claims.
func (v *oidcVerifier) Verify(ctx context.Context, tokenString string) (*service.Claims, error) {
	idToken, err := v.verifier.Verify(ctx, tokenString)
	if err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	var extra struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&extra); err != nil {
		return nil, errors.Wrap(err, "parse claims")
	}

	return &service.Claims{
		Email: extra.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   idToken.Subject,
			Issuer:    idToken.Issuer,
			Audience:  idToken.Audience,
			IssuedAt:  jwt.NewNumericDate(idToken.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(idToken.Expiry),
		},
	}, nil
}
