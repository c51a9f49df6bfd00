package profiles

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

const resourceName = "profile"

type Service struct {
	db         *database.DB
	repository Repository
}

var _ ProfileService = (*Service)(nil)

func NewService(db *database.DB, repository Repository) *Service {
	return &Service{
		db:         db,
		repository: repository,
	}
}

// Create stores the podcast profile. It is rejected, never overwritten, when a
// profile already exists.
func (s *Service) Create(ctx context.Context, input Input) (*models.Profile, error) {
	profile := &models.Profile{
		Nome:      input.Nome,
		Autor:     input.Autor,
		Descricao: input.Descricao,
		Capa:      input.Capa,
	}

	log.Printf("[DEBUG] Adding profile: %s", profile.Nome)

	err := s.db.Transact(ctx, func(tx *gorm.DB) error {
		repo := s.repository.WithTx(tx)

		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if total > 0 {
			return ErrProfileExists
		}
		return repo.Create(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, ErrProfileExists) {
			log.Printf("[WARN] Profile %q rejected, a profile already exists", profile.Nome)
			return nil, apperrors.SingletonViolation(resourceName).WithCause(err)
		}
		log.Printf("[WARN] Could not save profile %q: %v", profile.Nome, err)
		return nil, apperrors.OperationFailed("could not save profile", err)
	}

	log.Printf("[DEBUG] Added profile %d: %s", profile.ID, profile.Nome)
	return profile, nil
}

func (s *Service) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repository.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			log.Printf("[DEBUG] No profile registered")
			return nil, nil
		}
		log.Printf("[ERROR] Failed to fetch profile: %v", err)
		return nil, apperrors.OperationFailed("could not fetch profile", err)
	}
	return profile, nil
}

// Delete removes the profile and returns the removed record
func (s *Service) Delete(ctx context.Context) (*models.Profile, error) {
	var removed *models.Profile
	err := s.db.Transact(ctx, func(tx *gorm.DB) error {
		repo := s.repository.WithTx(tx)

		profile, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, profile); err != nil {
			return err
		}
		removed = profile
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			log.Printf("[WARN] Delete requested but no profile exists")
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "profile not found").WithCause(err)
		}
		log.Printf("[ERROR] Failed to delete profile: %v", err)
		return nil, apperrors.OperationFailed("could not delete profile", err)
	}

	log.Printf("[DEBUG] Deleted profile %s", removed.Nome)
	return removed, nil
}
