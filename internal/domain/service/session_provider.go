// Package service defines interfaces for core, stateless domain logic.
package service

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AuthStateChangeFunc receives session lifecycle events. session is nil for SIGNED_OUT.
type AuthStateChangeFunc func(event entity.AuthEvent, session *entity.Session)

// SessionProvider is the persisted-session primitive the resolver is built on.
type SessionProvider interface {
	// GetSession returns the persisted session, or nil when none is stored or it has expired.
	GetSession(ctx context.Context) (*entity.Session, error)

	// SignIn verifies and persists an access token, then fires SIGNED_IN.
	SignIn(ctx context.Context, accessToken string) (*entity.Session, error)

	// Refresh replaces the stored token, firing TOKEN_REFRESHED for the same identity
	// and SIGNED_IN for a different one.
	Refresh(ctx context.Context, accessToken string) (*entity.Session, error)

	// SignOut removes the persisted session and fires SIGNED_OUT if one existed.
	SignOut(ctx context.Context) error

	// OnAuthStateChange registers a callback and returns a function that unregisters it.
	OnAuthStateChange(fn AuthStateChangeFunc) (unsubscribe func())
}
