package models

import (
	"time"

	"github.com/google/uuid"

	"filescope/pkg/classifier"
)

// Scan is one persisted classification run over a project tree.
type Scan struct {
	ID         uuid.UUID          `db:"id" json:"id"`
	Root       string             `db:"root" json:"root"`
	Options    classifier.Options `db:"options" json:"options"`
	TotalFiles int                `db:"total_files" json:"total_files"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`

	// Result and Stats are populated on save and when a scan is loaded in
	// full; list queries leave them nil.
	Result *classifier.Result         `json:"result,omitempty"`
	Stats  *classifier.ExclusionStats `json:"stats,omitempty"`
}

// CategoryCount aggregates one category's files by confidence.
type CategoryCount struct {
	Category classifier.Category `json:"category"`
	Total    int                 `json:"total"`
	High     int                 `json:"high"`
	Medium   int                 `json:"medium"`
	Low      int                 `json:"low"`
}

// ScanSummary is the per-category rollup of a scan, ordered the way
// classifier.Categories orders them.
type ScanSummary struct {
	Categories    []CategoryCount `json:"categories"`
	TotalFiles    int             `json:"total_files"`
	TotalExcluded int             `json:"total_excluded"`
}

// Summarize rolls a classification result and its exclusion stats up into
// per-category counts. Empty categories are omitted.
func Summarize(result *classifier.Result, stats *classifier.ExclusionStats) ScanSummary {
	summary := ScanSummary{Categories: []CategoryCount{}}
	for _, c := range classifier.Categories {
		files := result.Files[c]
		if len(files) == 0 {
			continue
		}
		count := CategoryCount{Category: c, Total: len(files)}
		for _, f := range files {
			switch f.Confidence {
			case classifier.ConfidenceHigh:
				count.High++
			case classifier.ConfidenceMedium:
				count.Medium++
			default:
				count.Low++
			}
		}
		summary.Categories = append(summary.Categories, count)
		summary.TotalFiles += count.Total
	}
	if stats != nil {
		summary.TotalExcluded = stats.Total()
	}
	return summary
}
