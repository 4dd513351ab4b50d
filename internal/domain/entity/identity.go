// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Identity is the authenticated principal for the running client.
// Its ID is opaque; it is whatever subject the session token carries.
type Identity struct {
	ID    string `json:"id"`              // Opaque subject of the session token.
	Email string `json:"email,omitempty"` // Optional email claim.
}

// Session is a persisted, token-backed sign-in owned by the session provider.
type Session struct {
	Identity    Identity  `json:"identity"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
// A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(s.ExpiresAt)
}

// AuthEvent is the kind of change reported by the session provider.
type AuthEvent string

const (
	// AuthEventSignedIn fires when a new session is stored.
	AuthEventSignedIn AuthEvent = "SIGNED_IN"
	// AuthEventSignedOut fires when the persisted session is removed.
	AuthEventSignedOut AuthEvent = "SIGNED_OUT"
	// AuthEventTokenRefreshed fires when the token of an existing session is replaced.
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)
