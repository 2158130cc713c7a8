package history

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedroganco/sanum/internal/domain"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewPruner_Validation(t *testing.T) {
	store, err := NewSQLiteStore(MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	tests := []struct {
		name      string
		store     domain.ScanHistory
		retention time.Duration
		schedule  string
		wantErr   bool
	}{
		{"default schedule", store, 24 * time.Hour, "", false},
		{"custom schedule", store, time.Hour, "*/5 * * * *", false},
		{"no store", nil, time.Hour, "", true},
		{"zero retention", store, 0, "", true},
		{"bad schedule", store, time.Hour, "every day", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPruner(newTestLogger(), tt.store, tt.retention, tt.schedule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPruner_PruneNow(t *testing.T) {
	store, err := NewSQLiteStore(MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	now := time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, &domain.ScanRecord{URL: "https://old.pt", ScannedAt: now.AddDate(0, 0, -45)}))
	require.NoError(t, store.Record(ctx, &domain.ScanRecord{URL: "https://recent.pt", ScannedAt: now.AddDate(0, 0, -3)}))

	pruner, err := NewPruner(newTestLogger(), store, 30*24*time.Hour, "")
	require.NoError(t, err)
	pruner.now = func() time.Time { return now }

	deleted, err := pruner.PruneNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := store.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "https://recent.pt", remaining[0].URL)
}

func TestPruner_StartStop(t *testing.T) {
	store, err := NewSQLiteStore(MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	pruner, err := NewPruner(newTestLogger(), store, time.Hour, "")
	require.NoError(t, err)

	pruner.Start()
	pruner.Stop()
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, domain.HistoryConfig{Driver: DriverSQLite, SQLitePath: MemoryPath}, newTestLogger())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	store.Close()

	_, err = Open(ctx, domain.HistoryConfig{Driver: "mongo"}, newTestLogger())
	assert.Error(t, err)
}
