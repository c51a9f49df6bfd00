package episodios

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

const resourceName = "episodio"

type Service struct {
	db         *database.DB
	repository Repository
}

// Ensure Service implements EpisodioService interface
var _ EpisodioService = (*Service)(nil)

func NewService(db *database.DB, repository Repository) *Service {
	return &Service{
		db:         db,
		repository: repository,
	}
}

// Create inserts a new episode. A title collision is reported as AlreadyExists.
func (s *Service) Create(ctx context.Context, input Input) (*models.Episodio, error) {
	episodio := &models.Episodio{
		Titulo:    input.Titulo,
		Descricao: input.Descricao,
		Capa:      input.Capa,
		Audio:     input.Audio,
	}

	log.Printf("[DEBUG] Adding episodio with title: %s", episodio.Titulo)

	err := s.db.Transact(ctx, func(tx *gorm.DB) error {
		return s.repository.WithTx(tx).Create(ctx, episodio)
	})
	if err != nil {
		if IsDuplicateTitle(err) {
			log.Printf("[WARN] Episodio with title %q already saved", episodio.Titulo)
			return nil, apperrors.AlreadyExists("episode with title", episodio.Titulo).WithCause(err)
		}
		log.Printf("[WARN] Could not save episodio %q: %v", episodio.Titulo, err)
		return nil, apperrors.OperationFailed("could not save episode", err)
	}

	log.Printf("[DEBUG] Added episodio %d: %s", episodio.ID, episodio.Titulo)
	return episodio, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Episodio, error) {
	log.Printf("[DEBUG] Fetching episodio with id: %d", id)

	episodio, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return episodio, nil
}

// List returns all episodes, newest first. An empty store yields an empty slice.
func (s *Service) List(ctx context.Context) ([]models.Episodio, error) {
	episodios, err := s.repository.List(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to list episodios: %v", err)
		return nil, apperrors.OperationFailed("could not list episodes", err)
	}

	log.Printf("[DEBUG] %d episodio(s) found", len(episodios))
	return episodios, nil
}

// Update replaces the editable fields of an episode. Any failure rolls the
// transaction back so no partial update is persisted.
func (s *Service) Update(ctx context.Context, id uint, input Input) (*models.Episodio, error) {
	log.Printf("[DEBUG] Updating episodio with id: %d", id)

	var updated *models.Episodio
	err := s.db.Transact(ctx, func(tx *gorm.DB) error {
		repo := s.repository.WithTx(tx)

		episodio, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		episodio.Titulo = input.Titulo
		episodio.Descricao = input.Descricao
		episodio.Capa = input.Capa
		episodio.Audio = input.Audio

		if err := repo.Update(ctx, episodio); err != nil {
			return err
		}
		updated = episodio
		return nil
	})
	if err != nil {
		switch {
		case IsNotFound(err):
			return nil, s.lookupError(id, err)
		case IsDuplicateTitle(err):
			log.Printf("[WARN] Update of episodio %d collides with title %q", id, input.Titulo)
			return nil, apperrors.AlreadyExists("episode with title", input.Titulo).WithCause(err)
		default:
			log.Printf("[ERROR] Failed to update episodio %d: %v", id, err)
			return nil, apperrors.OperationFailed("could not update episode", err).WithDetail("id", id)
		}
	}

	log.Printf("[DEBUG] Updated episodio with id %d", id)
	return updated, nil
}

// Delete removes an episode and returns the removed record
func (s *Service) Delete(ctx context.Context, id uint) (*models.Episodio, error) {
	log.Printf("[DEBUG] Deleting episodio with id: %d", id)

	var removed *models.Episodio
	err := s.db.Transact(ctx, func(tx *gorm.DB) error {
		repo := s.repository.WithTx(tx)

		episodio, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, episodio); err != nil {
			return err
		}
		removed = episodio
		return nil
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, s.lookupError(id, err)
		}
		log.Printf("[ERROR] Failed to delete episodio %d: %v", id, err)
		return nil, apperrors.OperationFailed("could not delete episode", err).WithDetail("id", id)
	}

	log.Printf("[DEBUG] Deleted episodio %s", removed.Titulo)
	return removed, nil
}

func (s *Service) lookupError(id uint, err error) error {
	if IsNotFound(err) {
		log.Printf("[WARN] Episodio with id %d not found", id)
		return apperrors.NotFound(resourceName, id).WithCause(err)
	}
	log.Printf("[ERROR] Failed to fetch episodio %d: %v", id, err)
	return apperrors.OperationFailed("could not fetch episode", err).WithDetail("id", id)
}
