package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pedroganco/sanum/internal/domain"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// SQLiteStore keeps scan history in a local SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens dbPath, creating the file and schema if needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers and keeps an in-memory database
	// alive for the lifetime of the store.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS scan_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		business_name TEXT NOT NULL DEFAULT '',
		platforms TEXT NOT NULL DEFAULT '[]',
		detected_tone TEXT NOT NULL DEFAULT '',
		scanned_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scan_history_scanned_at ON scan_history(scanned_at);
	CREATE INDEX IF NOT EXISTS idx_scan_history_url ON scan_history(url);
	`

	_, err := db.Exec(schema)
	return err
}

// Record stores a completed discovery and assigns its ID.
func (s *SQLiteStore) Record(ctx context.Context, record *domain.ScanRecord) error {
	platforms, err := encodePlatforms(record.Platforms)
	if err != nil {
		return err
	}
	if record.ScannedAt.IsZero() {
		record.ScannedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_history (url, business_name, platforms, detected_tone, scanned_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		record.URL,
		record.BusinessName,
		platforms,
		string(record.DetectedTone),
		record.ScannedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}
	record.ID = id
	return nil
}

// List returns the most recent scans first.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*domain.ScanRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, business_name, platforms, detected_tone, scanned_at
		FROM scan_history
		ORDER BY scanned_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Prune deletes scans recorded before olderThan.
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scan_history WHERE scanned_at < ?", olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to prune: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the number of stored scans.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scan_history").Scan(&count)
	return count, err
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*domain.ScanRecord, error) {
	record := &domain.ScanRecord{}
	var platforms, tone string

	if err := s.Scan(&record.ID, &record.URL, &record.BusinessName, &platforms, &tone, &record.ScannedAt); err != nil {
		return nil, err
	}

	record.DetectedTone = domain.Tone(tone)
	record.ScannedAt = record.ScannedAt.UTC()
	if err := json.Unmarshal([]byte(platforms), &record.Platforms); err != nil {
		return nil, fmt.Errorf("failed to decode platforms: %w", err)
	}
	return record, nil
}

func scanRecords(rows *sql.Rows) ([]*domain.ScanRecord, error) {
	records := []*domain.ScanRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func encodePlatforms(platforms []domain.Platform) (string, error) {
	if platforms == nil {
		platforms = []domain.Platform{}
	}
	data, err := json.Marshal(platforms)
	if err != nil {
		return "", fmt.Errorf("failed to encode platforms: %w", err)
	}
	return string(data), nil
}
