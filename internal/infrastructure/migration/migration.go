package migration

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration to the database at databaseURL.
func Up(databaseURL string) error {
	m, err := newMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	slog.Info("Starting database migrations")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("No migrations to apply")
			return nil
		}
		slog.Error("Migration failed", "error", err)
		return fmt.Errorf("migrate up: %w", err)
	}
	version, dirty, _ := m.Version()
	slog.Info("All migrations completed successfully", "version", version, "dirty", dirty)
	return nil
}

// Down rolls back steps migrations.
func Down(databaseURL string, steps int) error {
	m, err := newMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("Rollback failed", "steps", steps, "error", err)
		return fmt.Errorf("migrate down %d: %w", steps, err)
	}
	slog.Info("Rollback completed", "steps", steps)
	return nil
}

func newMigrate(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect migrations: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		slog.Warn("Closing migrations", "source_error", srcErr, "db_error", dbErr)
	}
}
