package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/podcast-profile-api/pkg/config"
	apperrors "github.com/killallgit/podcast-profile-api/pkg/errors"
)

type DB struct {
	*gorm.DB
}

// Options selects the driver and pool settings for Open
type Options struct {
	Driver          string
	Path            string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Verbose         bool
	// LogOutput receives query logs; stdout when nil
	LogOutput io.Writer
}

// OptionsFromConfig maps the database section of the application config
func OptionsFromConfig(cfg config.DatabaseConfig) Options {
	return Options{
		Driver:          cfg.Driver,
		Path:            cfg.Path,
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxConnections,
		MaxIdleConns:    cfg.MaxIdleConnections,
		ConnMaxLifetime: cfg.ConnectionMaxLifetime,
		Verbose:         cfg.LogQueries,
	}
}

// Initialize creates a new sqlite database connection at dbPath
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(Options{Driver: config.DriverSQLite, Path: dbPath, Verbose: verbose})
}

// Open creates a new database connection with the provided options
func Open(opts Options) (*DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case config.DriverSQLite, "":
		if err := ensureDir(opts.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(opts.Path)
	case config.DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	default:
		return nil, apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", opts.Driver))
	}

	gormConfig := &gorm.Config{
		Logger: newLogger(opts.LogOutput, opts.Verbose),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 100
	}
	maxIdle := opts.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	lifetime := opts.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	// Every connection to :memory: is a separate database
	if isMemory(opts) {
		maxOpen, maxIdle = 1, 1
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(lifetime)

	return &DB{DB: db}, nil
}

// newLogger logs failed queries, or every query when verbose. A missing row is
// an expected lookup result, not a failure.
func newLogger(out io.Writer, verbose bool) logger.Interface {
	if out == nil {
		out = os.Stdout
	}
	level := logger.Error
	if verbose {
		level = logger.Info
	}
	return logger.New(log.New(out, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func ensureDir(dbPath string) error {
	if dbPath == "" || strings.HasPrefix(dbPath, ":memory:") || strings.HasPrefix(dbPath, "file:") {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return nil
}

func isMemory(opts Options) bool {
	return (opts.Driver == config.DriverSQLite || opts.Driver == "") && strings.Contains(opts.Path, ":memory:")
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "database ping failed")
	}

	return nil
}

// Transact runs fn inside a single transaction. The transaction commits when fn
// returns nil and rolls back when it returns an error or panics.
func (db *DB) Transact(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return db.DB.WithContext(ctx).Transaction(fn)
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseMigration, "auto migration failed")
	}
	log.Printf("[INFO] Successfully migrated %d model(s)", len(models))
	return nil
}

// DropTables drops the tables of the provided models, last model first
func (db *DB) DropTables(models ...any) error {
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.DB.Migrator().DropTable(models[i]); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeDatabaseMigration, "dropping table failed")
		}
	}
	log.Printf("[INFO] Dropped %d table(s)", len(models))
	return nil
}

// TableStatus reports whether the table of a model exists
type TableStatus struct {
	Table  string
	Exists bool
}

// MigrationStatus lists the tables of the provided models and whether they exist
func (db *DB) MigrationStatus(models ...any) ([]TableStatus, error) {
	statuses := make([]TableStatus, 0, len(models))
	for _, model := range models {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}
		statuses = append(statuses, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: db.DB.Migrator().HasTable(model),
		})
	}
	return statuses, nil
}

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
