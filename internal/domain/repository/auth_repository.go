// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dashboard/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential matches the login email.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the credential lookups used by password sign-in.
type AuthRepository interface {
	// FindByEmail retrieves the password credential registered for an email.
	FindByEmail(ctx context.Context, email string) (*entity.Authentication, error)

	// CreateAuthentication persists a new password credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
