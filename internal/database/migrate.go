package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator applies the SQL files under a golang-migrate source URL.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator binds the migration source to this client's handle.
func (c *Client) NewMigrator(sourceURL string) (*Migrator, error) {
	var (
		driver migratedb.Driver
		err    error
	)
	switch c.dialect.Name() {
	case "mysql":
		driver, err = migratemysql.WithInstance(c.db, &migratemysql.Config{})
	case "postgres":
		driver, err = postgres.WithInstance(c.db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migration driver for %q", c.dialect.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, c.dialect.Name(), driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration rollback failed: %w", err)
	}
	return nil
}

// Version reports the applied schema version and whether it is dirty.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}
