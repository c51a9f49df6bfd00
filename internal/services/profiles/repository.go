package profiles

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) WithTx(tx *gorm.DB) Repository {
	return &GormRepository{db: tx}
}

func (r *GormRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return DuplicateNameError{Nome: profile.Nome}
		}
		return apperrors.DatabaseError("creating profile", err)
	}
	return nil
}

// Get returns the oldest profile row
func (r *GormRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Order("pk_profile ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, apperrors.DatabaseError("getting profile", err)
	}
	return &profile, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, apperrors.DatabaseError("counting profiles", err)
	}
	return total, nil
}

func (r *GormRepository) Delete(ctx context.Context, profile *models.Profile) error {
	result := r.db.WithContext(ctx).Delete(profile)
	if result.Error != nil {
		return apperrors.DatabaseError("deleting profile", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
