package store

import (
	"context"

	"github.com/google/uuid"

	"filescope/internal/models"
)

// ScanStore persists classification runs for later inspection (history
// listing, the HTTP API, repository dashboards).
type ScanStore interface {
	// SaveScan stores a scan together with its full result and stats.
	SaveScan(ctx context.Context, scan *models.Scan) error
	// GetScan loads one scan with Result and Stats populated.
	GetScan(ctx context.Context, id uuid.UUID) (*models.Scan, error)
	// ListScans returns the most recent scans, newest first, without
	// their per-file results.
	ListScans(ctx context.Context, limit int) ([]*models.Scan, error)
	// Ping checks connectivity.
	Ping(ctx context.Context) error
	// Close releases the underlying handle.
	Close() error
}
