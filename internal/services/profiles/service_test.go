package profiles

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

func setupService(t *testing.T) (*Service, *GormRepository) {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db.DB)
	return NewService(db, repo), repo
}

var nerdcast = Input{
	Nome:      "NerdCast",
	Autor:     "Jovem Nerd",
	Descricao: "O mundo vira piada no Jovem Nerd",
	Capa:      "https://example.com/nc-feed.jpg",
}

func TestService_CreateSingleton(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, nerdcast)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.DataInsercao.IsZero())

	tests := []struct {
		name  string
		input Input
	}{
		{name: "same name", input: nerdcast},
		{name: "different name", input: Input{Nome: "Another Show", Autor: "Someone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeSingletonViolation))
			assert.Equal(t, http.StatusMethodNotAllowed, apperrors.GetHTTPCode(err))

			total, err := repo.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
		})
	}

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NerdCast", stored.Nome, "existing profile is never overwritten")
}

func TestService_GetEmpty(t *testing.T) {
	svc, _ := setupService(t)

	profile, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestService_Delete(t *testing.T) {
	svc, repo := setupService(t)
	ctx := context.Background()

	_, err := svc.Delete(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.GetHTTPCode(err))

	created, err := svc.Create(ctx, nerdcast)
	require.NoError(t, err)

	removed, err := svc.Delete(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Equal(t, "NerdCast", removed.Nome)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = svc.Create(ctx, nerdcast)
	assert.NoError(t, err, "a new profile may be created once the old one is gone")
}

func TestRepository_DuplicateName(t *testing.T) {
	_, repo := setupService(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Profile{Nome: "Dup"}))
	err := repo.Create(ctx, &models.Profile{Nome: "Dup"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileExists)
	assert.Contains(t, err.Error(), "Dup")
}

func TestRepository_StoreFailures(t *testing.T) {
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	repo := NewRepository(db.DB)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err = repo.Get(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProfileNotFound)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))

	_, err = repo.Count(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))

	err = repo.Create(ctx, &models.Profile{Nome: "NerdCast"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetHTTPCode(err))
}
