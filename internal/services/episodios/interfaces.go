package episodios

import (
	"context"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/models"
)

// Repository defines the data access interface for episodes
type Repository interface {
	// Create operations
	Create(ctx context.Context, episodio *models.Episodio) error
	CreateBatch(ctx context.Context, episodios []models.Episodio) error

	// Read operations
	GetByID(ctx context.Context, id uint) (*models.Episodio, error)
	GetByTitle(ctx context.Context, titulo string) (*models.Episodio, error)
	List(ctx context.Context) ([]models.Episodio, error)
	Count(ctx context.Context) (int64, error)

	// Update operations
	Update(ctx context.Context, episodio *models.Episodio) error

	// Delete operations
	Delete(ctx context.Context, episodio *models.Episodio) error

	// WithTx returns a repository bound to an open transaction
	WithTx(tx *gorm.DB) Repository
}

// EpisodioService defines the business logic interface for episode operations
type EpisodioService interface {
	Create(ctx context.Context, input Input) (*models.Episodio, error)
	Get(ctx context.Context, id uint) (*models.Episodio, error)
	List(ctx context.Context) ([]models.Episodio, error)
	Update(ctx context.Context, id uint, input Input) (*models.Episodio, error)
	Delete(ctx context.Context, id uint) (*models.Episodio, error)
}

// Input carries the client-editable fields of an episode
type Input struct {
	Titulo    string
	Descricao string
	Capa      string
	Audio     string
}
