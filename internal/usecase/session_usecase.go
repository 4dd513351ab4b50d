// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// SessionUsecase is the single source of truth for who is signed in on this client.
type SessionUsecase interface {
	// Initialize performs the startup session check and subscribes to session events.
	// A failed or timed-out check resolves to the signed-out state.
	Initialize(ctx context.Context) entity.AuthState

	// Watch streams the current state followed by every published change.
	// The channel conflates (latest wins) and is closed when ctx ends.
	Watch(ctx context.Context) <-chan entity.AuthState

	// Current returns the last published state.
	Current() entity.AuthState

	// Reconnect reopens the notification channel for the signed-in identity.
	// A sign-in or sign-out that happens meanwhile abandons the reopen.
	Reconnect(ctx context.Context) error

	// SignOut tears down the notification channel, clears all cached state and
	// invalidates the persisted session. Calling it while signed out is a no-op.
	SignOut(ctx context.Context) error

	// Close unregisters from session events and ends every Watch stream.
	Close()
}

// SignInUsecase exchanges credentials for a persisted session.
type SignInUsecase interface {
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	SignInWithToken(ctx context.Context, accessToken string) (*entity.Session, error)
}
