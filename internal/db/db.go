// Package db opens and migrates the backing store. The returned *gorm.DB is
// injected into the stores; nothing in this package owns it afterwards.
package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/upcheck-dev/upcheck/internal/models"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Open opens a GORM connection based on the provided DSN. Postgres serves
// production; sqlite covers local development and the test suite.
func Open(dsn string) (*gorm.DB, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, fmt.Errorf("db: empty dsn")
	}

	dialect, err := detectDialect(trimmed)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch dialect {
	case DialectPostgres:
		return openPostgres(trimmed, cfg)
	default:
		return gorm.Open(sqlite.Open(trimmed), cfg)
	}
}

func detectDialect(dsn string) (string, error) {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname="):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:") || !strings.Contains(lower, "://"):
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("db: unsupported dsn: %s", dsn)
	}
}

func openPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("db: open: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("db: pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return conn, nil
}

// Migrate creates missing tables and the partial unique index backing
// slug-uniqueness-among-active-rows. The application-level availability check
// is a fast fail only; this index is the real guarantee under concurrent
// creates.
func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.User{},
		&models.Workspace{},
		&models.Service{},
		&models.Endpoint{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS workspaces_slug_active_idx ON workspaces (slug) WHERE deleted_at IS NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS users_email_active_idx ON users (email) WHERE deleted_at IS NULL",
	}

	for _, stmt := range indexes {
		if err := conn.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
