package repository

import (
	"context"
	"errors"

	"dashboard/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists for an identity.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the point-lookup profile store.
type ProfileRepository interface {
	// FindByID retrieves the profile row for an identity ID.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)
}
