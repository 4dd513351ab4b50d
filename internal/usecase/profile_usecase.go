// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// ProfileUsecase resolves the authorization attributes of an identity.
type ProfileUsecase interface {
	// Resolve never fails: a missing or unreadable profile yields entity.DefaultProfile(id).
	Resolve(ctx context.Context, id string) *entity.Profile

	// Clear drops every cached profile.
	Clear()
}
