package importer

import (
	"context"

	"github.com/killallgit/podcast-profile-api/internal/models"
	"github.com/killallgit/podcast-profile-api/internal/services/feeds"
)

// FeedFetcher retrieves and parses a remote feed
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (*feeds.Document, error)
}

// FeedImporter reconciles a remote feed with the stored profile and episodes
type FeedImporter interface {
	ImportFeed(ctx context.Context, feedURL string) (*Result, error)
}

// Result is the outcome of a single import
type Result struct {
	// Profile is set only when the import created the profile
	Profile  *models.Profile
	Episodes []models.Episodio
	Errors   []string
}
