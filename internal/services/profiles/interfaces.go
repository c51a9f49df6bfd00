package profiles

import (
	"context"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/models"
)

// Repository defines the data access interface for the podcast profile
type Repository interface {
	Create(ctx context.Context, profile *models.Profile) error
	Get(ctx context.Context) (*models.Profile, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, profile *models.Profile) error

	// WithTx returns a repository bound to an open transaction
	WithTx(tx *gorm.DB) Repository
}

// ProfileService defines the business logic interface for the singleton profile
type ProfileService interface {
	Create(ctx context.Context, input Input) (*models.Profile, error)
	// Get returns nil without error when no profile exists
	Get(ctx context.Context) (*models.Profile, error)
	Delete(ctx context.Context) (*models.Profile, error)
}

// Input carries the client-editable fields of the profile
type Input struct {
	Nome      string
	Autor     string
	Descricao string
	Capa      string
}
