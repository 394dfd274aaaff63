package store

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/epic-events/epicrm/internal/models"
)

// Store manages the local EpiCRM database via GORM.
type Store struct {
	db      *gorm.DB
	dataDir string
}

// New creates a Store using the default platform data directory.
func New() (*Store, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("determining data directory: %w", err)
	}
	return Open(dataDir)
}

// Open creates a Store backed by SQLite in the given data directory.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "epicrm.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := migrate(db); err != nil {
		return nil, err
	}

	return &Store{db: db, dataDir: dataDir}, nil
}

// OpenPostgres creates a Store backed by a Postgres database.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.User{},
		&models.Client{},
		&models.Contract{},
		&models.Event{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// DB returns the underlying GORM DB for advanced queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// DataDir returns the store's data directory. Empty for Postgres.
func (s *Store) DataDir() string {
	return s.dataDir
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DefaultDataDir returns ~/.local/share/epicrm on Linux, platform
// equivalent elsewhere. EPICRM_DATA_DIR overrides.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("EPICRM_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "epicrm"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "epicrm"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "epicrm"), nil
	default:
		return filepath.Join(home, ".local", "share", "epicrm"), nil
	}
}
