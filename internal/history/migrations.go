package history

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ErrNoMigrations is returned for drivers whose schema is created in place.
var ErrNoMigrations = errors.New("schema migrations only apply to the postgres history driver")

// SchemaVersion is the migration state of a history database.
type SchemaVersion struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
}

// MigrationRunner applies the embedded PostgreSQL schema migrations.
type MigrationRunner struct {
	migrate *migrate.Migrate
	log     *logrus.Logger
}

// NewMigrationRunner prepares the embedded migrations against databaseURL.
func NewMigrationRunner(databaseURL string, logger *logrus.Logger) (*MigrationRunner, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting migrations to history database: %w", err)
	}

	return &MigrationRunner{migrate: m, log: logger}, nil
}

// OpenMigrations returns a runner for the database selected by config.
// SQLite stores create their table on open and yield ErrNoMigrations.
func OpenMigrations(config domain.HistoryConfig, logger *logrus.Logger) (*MigrationRunner, error) {
	if config.Driver != DriverPostgres {
		return nil, ErrNoMigrations
	}
	return NewMigrationRunner(config.PostgresURL, logger)
}

// Up applies every pending migration.
func (mr *MigrationRunner) Up(ctx context.Context) error {
	return mr.apply(ctx, "up", mr.migrate.Up)
}

// Down reverts the most recent migration.
func (mr *MigrationRunner) Down(ctx context.Context) error {
	return mr.apply(ctx, "down", func() error { return mr.migrate.Steps(-1) })
}

func (mr *MigrationRunner) apply(ctx context.Context, direction string, step func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := step()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.log.WithField("direction", direction).Info("History schema already current")
		return nil
	}
	if err != nil {
		return fmt.Errorf("history migration %s: %w", direction, err)
	}

	v, err := mr.Version()
	if err != nil {
		mr.log.WithError(err).Warn("Could not read history schema version")
		return nil
	}
	mr.log.WithFields(logrus.Fields{
		"direction": direction,
		"version":   v.Version,
		"dirty":     v.Dirty,
	}).Info("History schema migrated")
	return nil
}

// Version reports the applied schema version. An unmigrated database is
// version 0.
func (mr *MigrationRunner) Version() (SchemaVersion, error) {
	version, dirty, err := mr.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return SchemaVersion{}, nil
	}
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("reading history schema version: %w", err)
	}
	return SchemaVersion{Version: version, Dirty: dirty}, nil
}

// Close releases the migration source and database handles.
func (mr *MigrationRunner) Close() error {
	sourceErr, dbErr := mr.migrate.Close()
	return errors.Join(sourceErr, dbErr)
}
