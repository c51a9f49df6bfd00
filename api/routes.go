package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-profile-api/api/episodios"
	"github.com/killallgit/podcast-profile-api/api/health"
	"github.com/killallgit/podcast-profile-api/api/importacoes"
	"github.com/killallgit/podcast-profile-api/api/profile"
	"github.com/killallgit/podcast-profile-api/api/types"
	"github.com/killallgit/podcast-profile-api/api/version"
	_ "github.com/killallgit/podcast-profile-api/docs/swagger"
	episodiosService "github.com/killallgit/podcast-profile-api/internal/services/episodios"
	"github.com/killallgit/podcast-profile-api/internal/services/feeds"
	"github.com/killallgit/podcast-profile-api/internal/services/importer"
	profilesService "github.com/killallgit/podcast-profile-api/internal/services/profiles"
	"github.com/killallgit/podcast-profile-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation
	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/docs/index.html")
	})
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required for resource routes")
	}

	if deps.EpisodioService == nil {
		deps.EpisodioService = episodiosService.NewService(deps.DB, episodiosService.NewRepository(deps.DB.DB))
	}
	if deps.ProfileService == nil {
		deps.ProfileService = profilesService.NewService(deps.DB, profilesService.NewRepository(deps.DB.DB))
	}
	if deps.FeedImporter == nil {
		initializeFeedImporter(deps, cfg)
	}

	episodios.RegisterRoutes(engine.Group("/episodios"), deps)
	profile.RegisterRoutes(engine.Group("/profile"), deps)

	// Feed imports reach out to remote hosts, so they get their own per-client limit
	importGroup := engine.Group("/importacoes")
	if cfg.RateLimiting.Enabled {
		importGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.ImportRPS, cfg.RateLimiting.ImportBurst))
	}
	importacoes.RegisterRoutes(importGroup, deps)

	return nil
}

// initializeFeedImporter creates the importer with a fetcher built from config
func initializeFeedImporter(deps *types.Dependencies, cfg *config.Config) {
	deps.FeedImporter = importer.NewService(
		deps.DB,
		feeds.NewFetcherFromConfig(cfg.Feed),
		profilesService.NewRepository(deps.DB.DB),
		episodiosService.NewRepository(deps.DB.DB),
	)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Message: "the requested endpoint was not found: " + c.Request.URL.Path,
		})
	}
}
