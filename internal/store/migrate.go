package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EntityTables lists the migrated entity tables in dependency order.
var EntityTables = []string{"transactions", "tags", "tag_descriptions", "expand_transactions"}

// Migrate applies pending schema migrations. With drop set, every
// existing object is removed first (destructive overwrite).
func Migrate(db *sql.DB, drop bool) error {
	if drop {
		m, err := newMigrator(db)
		if err != nil {
			return err
		}
		if err := m.Drop(); err != nil {
			return fmt.Errorf("dropping schema: %w", err)
		}
	}

	// A fresh instance so the version table is recreated after a drop.
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("preparing migration driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("preparing migrator: %w", err)
	}
	return m, nil
}
