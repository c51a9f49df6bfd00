package types

import (
	"github.com/killallgit/podcast-profile-api/internal/database"
	"github.com/killallgit/podcast-profile-api/internal/services/episodios"
	"github.com/killallgit/podcast-profile-api/internal/services/importer"
	"github.com/killallgit/podcast-profile-api/internal/services/profiles"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	EpisodioService episodios.EpisodioService
	ProfileService  profiles.ProfileService
	FeedImporter    importer.FeedImporter
}
