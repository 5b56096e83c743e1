package primary

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filescope/internal/models"
	"filescope/internal/store"
	"filescope/pkg/classifier"
)

func newTestStore(t *testing.T) *StoreImpl {
	t.Helper()
	s, err := NewScanStore(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleScan() *models.Scan {
	result := classifier.NewResult()
	result.Files[classifier.CategorySource] = []classifier.FileResult{
		{Path: "src/app.go", Confidence: classifier.ConfidenceHigh},
		{Path: "src/util.go", Confidence: classifier.ConfidenceHigh},
	}
	result.Files[classifier.CategoryOther] = []classifier.FileResult{
		{Path: "mystery.xyz", Confidence: classifier.ConfidenceLow},
	}
	opts := classifier.DefaultOptions()
	opts.AnalyzeContent = true
	return &models.Scan{
		ID:         uuid.New(),
		Root:       "/tmp/project",
		Options:    opts,
		TotalFiles: result.TotalFiles(),
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
		Result:     result,
		Stats: &classifier.ExclusionStats{
			Layer1Always: 2,
			HiddenDirs:   1,
			ExcludedDirs: []string{".secret", "node_modules", "venv"},
		},
	}
}

func TestScanStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	scan := sampleScan()

	require.NoError(t, s.SaveScan(ctx, scan))

	got, err := s.GetScan(ctx, scan.ID)
	require.NoError(t, err)
	assert.Equal(t, scan.ID, got.ID)
	assert.Equal(t, scan.Root, got.Root)
	assert.Equal(t, scan.Options, got.Options)
	assert.Equal(t, scan.TotalFiles, got.TotalFiles)
	assert.Equal(t, scan.Result.Files[classifier.CategorySource], got.Result.Files[classifier.CategorySource])
	assert.Equal(t, scan.Result.Files[classifier.CategoryOther], got.Result.Files[classifier.CategoryOther])
	assert.Equal(t, scan.Stats.Layer1Always, got.Stats.Layer1Always)
	assert.Equal(t, scan.Stats.HiddenDirs, got.Stats.HiddenDirs)
	assert.Equal(t, scan.Stats.ExcludedDirs, got.Stats.ExcludedDirs)
}

func TestScanStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetScan(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestScanStore_SaveRequiresResult(t *testing.T) {
	s := newTestStore(t)
	scan := sampleScan()
	scan.Result = nil
	assert.Error(t, s.SaveScan(context.Background(), scan))
}

func TestScanStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := sampleScan()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	newer := sampleScan()
	require.NoError(t, s.SaveScan(ctx, older))
	require.NoError(t, s.SaveScan(ctx, newer))

	scans, err := s.ListScans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, newer.ID, scans[0].ID)
	assert.Equal(t, older.ID, scans[1].ID)
	// List queries skip per-file detail.
	assert.Nil(t, scans[0].Result)
}

func TestScanStore_ListLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.SaveScan(ctx, sampleScan()))
	}
	scans, err := s.ListScans(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, scans, 2)
}
