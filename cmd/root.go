package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/killallgit/podcast-profile-api/pkg/config"
	"github.com/killallgit/podcast-profile-api/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podcast-profile-api",
	Short: "Podcast Profile API server",
	Long: `Podcast Profile API - manages a single podcast profile and its episodes

The API stores one podcast profile plus its episodes and can populate
both from an RSS feed.

Features:
  • Episode CRUD with unique titles
  • Singleton podcast profile
  • RSS feed import with per-item conflict reporting
  • Swagger UI at /docs`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration when a command needs it
func loadConfig(cmd *cobra.Command, args []string) error {
	// Version output needs no configuration
	if cmd.Name() == "version" {
		return nil
	}

	flagValue, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(flagValue)
	if err != nil {
		return err
	}

	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	applyLogLevel(level, cfg)
	return nil
}

// applyLogLevel filters log output and picks the gin mode. Debug mode and
// query logging are never enabled in production.
func applyLogLevel(level logging.Level, cfg *config.Config) {
	logging.Setup(os.Stderr, level)

	if level == logging.LevelDebug && !cfg.IsProduction() {
		gin.SetMode(gin.DebugMode)
		config.Set("database.log_queries", true)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
