package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

var (
	once    sync.Once
	initErr error
)

// EnvPrefix is prepended to every environment override, e.g. PODCAST_SERVER_PORT
const EnvPrefix = "PODCAST"

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// A missing .env is normal outside local development
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			initErr = fmt.Errorf("error loading .env file: %w", err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Set overrides a config value, used by command line flags
func Set(key string, value any) {
	viper.Set(key, value)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", port))
	}

	switch driver := viper.GetString("database.driver"); driver {
	case DriverSQLite:
		if viper.GetString("database.path") == "" {
			return apperrors.ConfigError("database.path", "required for the "+driver+" driver")
		}
	case DriverPostgres:
		if viper.GetString("database.dsn") == "" {
			return apperrors.ConfigError("database.dsn", "required for the "+driver+" driver")
		}
	default:
		return apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", driver))
	}

	// Auto-correct values that would disable fetching or rate limiting entirely
	if viper.GetInt("feed.retry_attempts") <= 0 {
		log.Printf("[WARN] feed.retry_attempts must be positive, using 1")
		viper.Set("feed.retry_attempts", 1)
	}
	if viper.GetInt("rate_limiting.import_rps") <= 0 {
		viper.Set("rate_limiting.import_rps", 1)
	}
	if viper.GetInt("rate_limiting.import_burst") <= 0 {
		viper.Set("rate_limiting.import_burst", 2)
	}

	return nil
}

// Validate checks a loaded Config after command line overrides are applied
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid port %d", c.Server.Port))
	}

	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", c.Database.Driver))
	}

	return nil
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.path", "./database/db.sqlite3")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)

	// Feed import defaults
	viper.SetDefault("feed.timeout", 20*time.Second)
	viper.SetDefault("feed.user_agent", "PodcastProfileAPI/1.0")
	viper.SetDefault("feed.retry_attempts", 2)
	viper.SetDefault("feed.retry_delay", 1*time.Second)
	viper.SetDefault("feed.strip_html", false)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.import_rps", 1)
	viper.SetDefault("rate_limiting.import_burst", 5)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Origin", "Content-Type", "Authorization"})
	viper.SetDefault("security.enable_request_id", true)
}
