// Package history persists a summary of every website discovery so recent
// scans can be listed and old ones pruned.
package history

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open builds the store selected by config. PostgreSQL databases are
// migrated before use.
func Open(ctx context.Context, config domain.HistoryConfig, logger *logrus.Logger) (domain.ScanHistory, error) {
	switch config.Driver {
	case DriverSQLite, "":
		store, err := NewSQLiteStore(config.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.WithField("path", config.SQLitePath).Info("Scan history using SQLite")
		return store, nil

	case DriverPostgres:
		runner, err := OpenMigrations(config, logger)
		if err != nil {
			return nil, err
		}
		if err := runner.Up(ctx); err != nil {
			runner.Close()
			return nil, err
		}
		if err := runner.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close migration runner")
		}

		store, err := NewPostgresStoreFromURL(config.PostgresURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Scan history using PostgreSQL")
		return store, nil

	default:
		return nil, fmt.Errorf("unknown history driver %q", config.Driver)
	}
}
