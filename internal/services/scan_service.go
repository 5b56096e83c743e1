// Package services holds the application services sitting between the CLI
// or API surface and the classification engine and store.
package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"filescope/internal/models"
	"filescope/internal/store"
	"filescope/pkg/classifier"
)

// ScanService runs classification scans and manages their history.
type ScanService struct {
	engine *classifier.Engine
	store  store.ScanStore
}

func NewScanService(engine *classifier.Engine, scanStore store.ScanStore) *ScanService {
	return &ScanService{engine: engine, store: scanStore}
}

// ScanTree classifies the tree under root and, when save is set, persists
// the run to history.
func (s *ScanService) ScanTree(ctx context.Context, root string, opts classifier.Options, save bool) (*models.Scan, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving scan root: %w", err)
	}

	result, stats, err := s.engine.ClassifyTree(abs, opts)
	if err != nil {
		return nil, err
	}

	scan := &models.Scan{
		ID:         uuid.New(),
		Root:       abs,
		Options:    opts,
		TotalFiles: result.TotalFiles(),
		CreatedAt:  time.Now().UTC(),
		Result:     result,
		Stats:      stats,
	}
	log.Infof("scanned %s: %d files, %d directories excluded", abs, scan.TotalFiles, stats.Total())

	if save {
		if err := s.store.SaveScan(ctx, scan); err != nil {
			return nil, fmt.Errorf("saving scan: %w", err)
		}
		log.Infof("saved scan %s", scan.ID)
	}
	return scan, nil
}

// ClassifyFile classifies a single file without touching history.
func (s *ScanService) ClassifyFile(path string, analyzeContent bool) (classifier.Category, classifier.Confidence) {
	return s.engine.ClassifyFile(path, analyzeContent)
}

// History lists recent persisted scans, newest first.
func (s *ScanService) History(ctx context.Context, limit int) ([]*models.Scan, error) {
	return s.store.ListScans(ctx, limit)
}

// GetScan loads a persisted scan with its full result.
func (s *ScanService) GetScan(ctx context.Context, id uuid.UUID) (*models.Scan, error) {
	return s.store.GetScan(ctx, id)
}
