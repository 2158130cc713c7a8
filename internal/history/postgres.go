package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/pedroganco/sanum/internal/domain"
)

// PostgresStore keeps scan history in PostgreSQL. The schema is created by
// the embedded migrations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL opens databaseURL and wraps it.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Record stores a completed discovery and assigns its ID.
func (s *PostgresStore) Record(ctx context.Context, record *domain.ScanRecord) error {
	platforms, err := encodePlatforms(record.Platforms)
	if err != nil {
		return err
	}
	if record.ScannedAt.IsZero() {
		record.ScannedAt = time.Now().UTC()
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO scan_history (url, business_name, platforms, detected_tone, scanned_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		record.URL,
		record.BusinessName,
		platforms,
		string(record.DetectedTone),
		record.ScannedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}
	return nil
}

// List returns the most recent scans first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*domain.ScanRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, business_name, platforms, detected_tone, scanned_at
		FROM scan_history
		ORDER BY scanned_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Prune deletes scans recorded before olderThan.
func (s *PostgresStore) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scan_history WHERE scanned_at < $1", olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
