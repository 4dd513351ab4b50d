// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a password credential that can be exchanged for a session.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this authentication record.
	UserID       string    // The identity this credential signs in as.
	Email        string    // Login email, unique per credential.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // When the credential was created.
}
