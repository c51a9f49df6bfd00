package importer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/models"
	"github.com/killallgit/podcast-profile-api/internal/services/episodios"
	"github.com/killallgit/podcast-profile-api/internal/services/feeds"
	"github.com/killallgit/podcast-profile-api/internal/services/profiles"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

// MaxImportEntries caps how many feed entries a single import considers
const MaxImportEntries = 10

type Service struct {
	db        *database.DB
	fetcher   FeedFetcher
	profiles  profiles.Repository
	episodios episodios.Repository
}

var _ FeedImporter = (*Service)(nil)

func NewService(db *database.DB, fetcher FeedFetcher, profileRepo profiles.Repository, episodioRepo episodios.Repository) *Service {
	return &Service{
		db:        db,
		fetcher:   fetcher,
		profiles:  profileRepo,
		episodios: episodioRepo,
	}
}

// ImportFeed creates the profile (when none exists) and the episodes whose
// titles are not yet stored. Per-item problems are collected in Result.Errors;
// only an unusable feed or a failed episode insert aborts the import.
func (s *Service) ImportFeed(ctx context.Context, feedURL string) (*Result, error) {
	log.Printf("[INFO] Importing feed %s", feedURL)

	doc, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		if !errors.Is(err, feeds.ErrInvalidFeed) {
			log.Printf("[ERROR] Unexpected fetch failure for %s: %v", feedURL, err)
		}
		return nil, apperrors.InvalidFeed(feedURL, err)
	}

	result := &Result{
		Episodes: []models.Episodio{},
		Errors:   []string{},
	}

	err = s.db.Transact(ctx, func(tx *gorm.DB) error {
		if err := s.reconcileProfile(ctx, tx, doc, result); err != nil {
			return err
		}
		return s.reconcileEpisodes(ctx, tx, doc, result)
	})
	if err != nil {
		log.Printf("[ERROR] Import of %s rolled back: %v", feedURL, err)
		return nil, apperrors.OperationFailed("could not import feed", err)
	}

	log.Printf("[INFO] Imported feed %s: profile created=%t, %d episodes, %d errors",
		feedURL, result.Profile != nil, len(result.Episodes), len(result.Errors))
	return result, nil
}

// reconcileProfile inserts the channel as the profile when the slot is empty.
// The insert runs in a savepoint so its failure is recorded without aborting
// the episode import.
func (s *Service) reconcileProfile(ctx context.Context, tx *gorm.DB, doc *feeds.Document, result *Result) error {
	repo := s.profiles.WithTx(tx)

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		log.Printf("[DEBUG] Profile already registered, skipping channel %q", doc.Title)
		return nil
	}

	candidate := &models.Profile{
		Nome:      doc.Title,
		Autor:     doc.Author,
		Descricao: doc.Summary,
		Capa:      doc.ImageURL(),
	}

	err = tx.Transaction(func(sp *gorm.DB) error {
		return s.profiles.WithTx(sp).Create(ctx, candidate)
	})
	if err != nil {
		log.Printf("[WARN] Could not save profile %q: %v", candidate.Nome, err)
		result.Errors = append(result.Errors, fmt.Sprintf("could not save profile '%s': %v", candidate.Nome, err))
		return nil
	}

	log.Printf("[DEBUG] Added profile %d: %s", candidate.ID, candidate.Nome)
	result.Profile = candidate
	return nil
}

func (s *Service) reconcileEpisodes(ctx context.Context, tx *gorm.DB, doc *feeds.Document, result *Result) error {
	repo := s.episodios.WithTx(tx)

	entries := doc.Entries
	if len(entries) > MaxImportEntries {
		entries = entries[:MaxImportEntries]
	}

	pending := make([]models.Episodio, 0, len(entries))
	queued := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if queued[entry.Title] {
			result.Errors = append(result.Errors, episodios.NewDuplicateTitleError(entry.Title).Error())
			continue
		}

		_, err := repo.GetByTitle(ctx, entry.Title)
		switch {
		case err == nil:
			log.Printf("[WARN] Episode %q already exists", entry.Title)
			result.Errors = append(result.Errors, episodios.NewDuplicateTitleError(entry.Title).Error())
			continue
		case !episodios.IsNotFound(err):
			return err
		}

		queued[entry.Title] = true
		pending = append(pending, models.Episodio{
			Titulo:    entry.Title,
			Descricao: entry.Summary,
			Capa:      entry.ImageURL(),
			Audio:     entry.AudioURL(),
		})
	}

	if err := repo.CreateBatch(ctx, pending); err != nil {
		return err
	}

	log.Printf("[DEBUG] Added %d episodes", len(pending))
	result.Episodes = pending
	return nil
}
