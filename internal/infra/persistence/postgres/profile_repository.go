package postgres

import (
	"context"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/errors"
	"dashboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves the profile row for an identity ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// toProfileDomain keeps unknown role strings as-is; authorization checks treat
// them as matching no section.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		Role:        entity.Role(data.Role),
		AccountType: entity.AccountType(data.AccountType),
		FullName:    data.FullName,
		Email:       data.Email,
	}
}
