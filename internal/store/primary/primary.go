// Package primary implements the scan-history store on sqlite.
package primary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// StoreImpl implements the store.ScanStore interface using sqlite.
type StoreImpl struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id              TEXT PRIMARY KEY,
	root            TEXT NOT NULL,
	options         TEXT NOT NULL,
	total_files     INTEGER NOT NULL,
	layer1_always   INTEGER NOT NULL DEFAULT 0,
	layer2_ignore   INTEGER NOT NULL DEFAULT 0,
	layer3_defaults INTEGER NOT NULL DEFAULT 0,
	hidden_dirs     INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_files (
	scan_id    TEXT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
	path       TEXT NOT NULL,
	category   TEXT NOT NULL,
	confidence TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_files_scan ON scan_files(scan_id);

CREATE TABLE IF NOT EXISTS scan_exclusions (
	scan_id TEXT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
	path    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scan_exclusions_scan ON scan_exclusions(scan_id);
`

// NewScanStore opens (or creates) the sqlite database at path and ensures
// the schema exists.
func NewScanStore(ctx context.Context, path string) (*StoreImpl, error) {
	if path == "" {
		return nil, errors.New("database path cannot be empty")
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}
	return &StoreImpl{db: db}, nil
}

// Ping checks the database connection.
func (s *StoreImpl) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *StoreImpl) Close() error {
	return s.db.Close()
}
