package episodios

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

type GormRepository struct {
	db *gorm.DB
}

// Ensure GormRepository implements Repository interface
var _ Repository = (*GormRepository)(nil)

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) WithTx(tx *gorm.DB) Repository {
	return &GormRepository{db: tx}
}

func (r *GormRepository) Create(ctx context.Context, episodio *models.Episodio) error {
	if err := r.db.WithContext(ctx).Create(episodio).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return NewDuplicateTitleError(episodio.Titulo)
		}
		return apperrors.DatabaseError("creating episodio", err)
	}
	return nil
}

// CreateBatch inserts all episodes with a single statement
func (r *GormRepository) CreateBatch(ctx context.Context, episodios []models.Episodio) error {
	if len(episodios) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&episodios).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return fmt.Errorf("creating episodio batch: %w", ErrDuplicateTitle)
		}
		return apperrors.DatabaseError("creating episodio batch", err)
	}
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uint) (*models.Episodio, error) {
	var episodio models.Episodio
	if err := r.db.WithContext(ctx).First(&episodio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("id", id)
		}
		return nil, apperrors.DatabaseError("getting episodio", err)
	}
	return &episodio, nil
}

func (r *GormRepository) GetByTitle(ctx context.Context, titulo string) (*models.Episodio, error) {
	var episodio models.Episodio
	if err := r.db.WithContext(ctx).
		Where("titulo = ?", titulo).
		First(&episodio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("titulo", titulo)
		}
		return nil, apperrors.DatabaseError("getting episodio by titulo", err)
	}
	return &episodio, nil
}

// List returns every episode, most recently inserted first
func (r *GormRepository) List(ctx context.Context) ([]models.Episodio, error) {
	episodios := []models.Episodio{}
	if err := r.db.WithContext(ctx).
		Order("data_insercao DESC").
		Order("pk_episodio DESC").
		Find(&episodios).Error; err != nil {
		return nil, apperrors.DatabaseError("listing episodios", err)
	}
	return episodios, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Episodio{}).Count(&total).Error; err != nil {
		return 0, apperrors.DatabaseError("counting episodios", err)
	}
	return total, nil
}

func (r *GormRepository) Update(ctx context.Context, episodio *models.Episodio) error {
	result := r.db.WithContext(ctx).Save(episodio)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return NewDuplicateTitleError(episodio.Titulo)
		}
		return apperrors.DatabaseError("updating episodio", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("id", episodio.ID)
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, episodio *models.Episodio) error {
	result := r.db.WithContext(ctx).Delete(episodio)
	if result.Error != nil {
		return apperrors.DatabaseError("deleting episodio", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("id", episodio.ID)
	}
	return nil
}
