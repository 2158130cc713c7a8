//go:build integration

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pedroganco/sanum/internal/domain"
)

func TestPostgresStore_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("sanum"),
		postgres.WithUsername("sanum"),
		postgres.WithPassword("sanum"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate PostgreSQL container: %v", err)
		}
	}()

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(ctx, domain.HistoryConfig{Driver: DriverPostgres, PostgresURL: dsn}, newTestLogger())
	require.NoError(t, err)
	defer store.Close()

	now := time.Now().UTC().Truncate(time.Second)
	record := &domain.ScanRecord{
		URL:          "https://padaria.pt",
		BusinessName: "Padaria",
		Platforms:    []domain.Platform{domain.INSTAGRAM},
		DetectedTone: domain.CASUAL,
		ScannedAt:    now.Add(-48 * time.Hour),
	}
	require.NoError(t, store.Record(ctx, record))
	require.NoError(t, store.Record(ctx, &domain.ScanRecord{URL: "https://loja.pt", ScannedAt: now}))

	got, err := store.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://loja.pt", got[0].URL)
	assert.Equal(t, []domain.Platform{domain.INSTAGRAM}, got[1].Platforms)

	deleted, err := store.Prune(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Migrations are idempotent.
	runner, err := NewMigrationRunner(dsn, newTestLogger())
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Up(ctx))

	v, err := runner.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion{Version: 1}, v)

	require.NoError(t, runner.Down(ctx))
	v, err = runner.Version()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion{}, v)

	// Rolling back an empty schema is a no-op.
	require.NoError(t, runner.Down(ctx))
	require.NoError(t, runner.Up(ctx))
}
