package episodios

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	episodio := &models.Episodio{
		Titulo:    "NerdCast 961 - Qual é a pauta?",
		Descricao: "Projeto Velho Gostoso",
		Audio:     "https://example.com/audio.mp3",
	}
	require.NoError(t, repo.Create(ctx, episodio))
	assert.NotZero(t, episodio.ID)
	assert.False(t, episodio.DataInsercao.IsZero(), "insertion time is assigned by the store")
	assert.Empty(t, episodio.Capa)

	t.Run("duplicate title", func(t *testing.T) {
		err := repo.Create(ctx, &models.Episodio{Titulo: episodio.Titulo})
		require.Error(t, err)
		assert.True(t, IsDuplicateTitle(err))
		assert.Contains(t, err.Error(), episodio.Titulo)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("explicit insertion time is kept", func(t *testing.T) {
		when := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
		older := &models.Episodio{Titulo: "Older", DataInsercao: when}
		require.NoError(t, repo.Create(ctx, older))

		stored, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)
		assert.True(t, when.Equal(stored.DataInsercao))
	})
}

func TestRepository_CreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, repo.CreateBatch(ctx, nil))

	batch := []models.Episodio{{Titulo: "One"}, {Titulo: "Two"}, {Titulo: "Three"}}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	for _, e := range batch {
		assert.NotZero(t, e.ID, e.Titulo)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	t.Run("collision fails the whole batch inside a transaction", func(t *testing.T) {
		err := db.Transact(ctx, func(tx *gorm.DB) error {
			return repo.WithTx(tx).CreateBatch(ctx, []models.Episodio{{Titulo: "Four"}, {Titulo: "One"}})
		})
		require.Error(t, err)
		assert.True(t, IsDuplicateTitle(err))

		_, err = repo.GetByTitle(ctx, "Four")
		assert.True(t, IsNotFound(err))
	})
}

func TestRepository_GetByIDAndTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	episodio := &models.Episodio{Titulo: "Lookup"}
	require.NoError(t, repo.Create(ctx, episodio))

	byID, err := repo.GetByID(ctx, episodio.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lookup", byID.Titulo)

	byTitle, err := repo.GetByTitle(ctx, "Lookup")
	require.NoError(t, err)
	assert.Equal(t, episodio.ID, byTitle.ID)

	_, err = repo.GetByID(ctx, 999999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")

	_, err = repo.GetByTitle(ctx, "lookup")
	assert.True(t, IsNotFound(err), "title match is exact")
}

func TestRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(ctx, &models.Episodio{Titulo: fmt.Sprintf("Episode %d", i)}))
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, "Episode 4", listed[0].Titulo)
	assert.Equal(t, "Episode 3", listed[1].Titulo)
	assert.Equal(t, "Episode 2", listed[2].Titulo)
	assert.Equal(t, "Episode 1", listed[3].Titulo)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	first := &models.Episodio{Titulo: "First"}
	second := &models.Episodio{Titulo: "Second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	first.Descricao = "updated"
	require.NoError(t, repo.Update(ctx, first))
	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", stored.Descricao)

	second.Titulo = "First"
	err = repo.Update(ctx, second)
	require.Error(t, err)
	assert.True(t, IsDuplicateTitle(err))

	require.NoError(t, repo.Delete(ctx, first))
	_, err = repo.GetByID(ctx, first.ID)
	assert.True(t, IsNotFound(err))

	err = repo.Delete(ctx, &models.Episodio{ID: 424242})
	assert.True(t, IsNotFound(err))
}

func TestRepository_StoreFailures(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()
	require.NoError(t, db.Close())

	tests := []struct {
		name      string
		operation string
		run       func() error
	}{
		{"create", "creating episodio", func() error { return repo.Create(ctx, &models.Episodio{Titulo: "A"}) }},
		{"batch", "creating episodio batch", func() error { return repo.CreateBatch(ctx, []models.Episodio{{Titulo: "B"}}) }},
		{"get by title", "getting episodio by titulo", func() error { _, err := repo.GetByTitle(ctx, "A"); return err }},
		{"list", "listing episodios", func() error { _, err := repo.List(ctx); return err }},
		{"count", "counting episodios", func() error { _, err := repo.Count(ctx); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeDatabaseQuery))
			assert.False(t, IsNotFound(err))
			assert.False(t, IsDuplicateTitle(err))

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.operation, appErr.Details["operation"])
		})
	}
}
