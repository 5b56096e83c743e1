package primary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"filescope/internal/models"
	"filescope/internal/store"
	"filescope/pkg/classifier"
)

// SaveScan stores the scan row plus one row per classified file and one
// per excluded directory, atomically.
func (s *StoreImpl) SaveScan(ctx context.Context, scan *models.Scan) error {
	if scan.Result == nil || scan.Stats == nil {
		return errors.New("scan must carry result and stats")
	}
	opts, err := json.Marshal(scan.Options)
	if err != nil {
		return fmt.Errorf("failed to encode scan options: %w", err)
	}
	if scan.CreatedAt.IsZero() {
		scan.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scans (id, root, options, total_files,
			layer1_always, layer2_ignore, layer3_defaults, hidden_dirs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		scan.ID.String(), scan.Root, string(opts), scan.TotalFiles,
		scan.Stats.Layer1Always, scan.Stats.Layer2Ignore,
		scan.Stats.Layer3Defaults, scan.Stats.HiddenDirs, scan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scan: %w", err)
	}

	fileStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scan_files (scan_id, path, category, confidence)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare file insert: %w", err)
	}
	defer fileStmt.Close()

	for _, category := range classifier.Categories {
		for _, f := range scan.Result.Files[category] {
			if _, err := fileStmt.ExecContext(ctx, scan.ID.String(), f.Path, string(category), string(f.Confidence)); err != nil {
				return fmt.Errorf("failed to insert scan file: %w", err)
			}
		}
	}

	for _, dir := range scan.Stats.ExcludedDirs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO scan_exclusions (scan_id, path) VALUES (?, ?)`,
			scan.ID.String(), dir,
		); err != nil {
			return fmt.Errorf("failed to insert scan exclusion: %w", err)
		}
	}

	return tx.Commit()
}

// GetScan loads one scan with its full result and exclusion stats.
func (s *StoreImpl) GetScan(ctx context.Context, id uuid.UUID) (*models.Scan, error) {
	scan, err := s.scanRow(ctx, id)
	if err != nil {
		return nil, err
	}

	result := classifier.NewResult()
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, category, confidence FROM scan_files
		WHERE scan_id = ? ORDER BY category, path`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query scan files: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var path, category, confidence string
		if err := rows.Scan(&path, &category, &confidence); err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		c := classifier.Category(category)
		result.Files[c] = append(result.Files[c], classifier.FileResult{
			Path:       path,
			Confidence: classifier.Confidence(confidence),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading scan files: %w", err)
	}
	scan.Result = result

	excluded := []string{}
	exRows, err := s.db.QueryContext(ctx, `
		SELECT path FROM scan_exclusions WHERE scan_id = ? ORDER BY path`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query scan exclusions: %w", err)
	}
	defer exRows.Close()
	for exRows.Next() {
		var path string
		if err := exRows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion row: %w", err)
		}
		excluded = append(excluded, path)
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading scan exclusions: %w", err)
	}
	scan.Stats.ExcludedDirs = excluded

	return scan, nil
}

// ListScans returns the most recent scans, newest first, without per-file
// detail.
func (s *StoreImpl) ListScans(ctx context.Context, limit int) ([]*models.Scan, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, options, total_files,
			layer1_always, layer2_ignore, layer3_defaults, hidden_dirs, created_at
		FROM scans ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []*models.Scan
	for rows.Next() {
		scan, err := scanFromRows(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading scans: %w", err)
	}
	return scans, nil
}

func (s *StoreImpl) scanRow(ctx context.Context, id uuid.UUID) (*models.Scan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, root, options, total_files,
			layer1_always, layer2_ignore, layer3_defaults, hidden_dirs, created_at
		FROM scans WHERE id = ?`, id.String())
	scan, err := scanFromRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return scan, err
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFromRow(row rowScanner) (*models.Scan, error) {
	var (
		scan      models.Scan
		idStr     string
		optsJSON  string
		stats     classifier.ExclusionStats
		createdAt time.Time
	)
	err := row.Scan(&idStr, &scan.Root, &optsJSON, &scan.TotalFiles,
		&stats.Layer1Always, &stats.Layer2Ignore, &stats.Layer3Defaults,
		&stats.HiddenDirs, &createdAt)
	if err != nil {
		return nil, err
	}
	scan.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid scan id %q: %w", idStr, err)
	}
	if err := json.Unmarshal([]byte(optsJSON), &scan.Options); err != nil {
		return nil, fmt.Errorf("invalid scan options for %s: %w", idStr, err)
	}
	scan.CreatedAt = createdAt
	stats.ExcludedDirs = []string{}
	scan.Stats = &stats
	return &scan, nil
}

func scanFromRows(rows *sql.Rows) (*models.Scan, error) {
	scan, err := scanFromRow(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	return scan, nil
}
