// Package classifier implements a cascading, multi-phase file classifier.
//
// Every file resolves to exactly one of eight categories with a confidence
// tied to the phase that decided it:
//
//	Phase 1: directory and filename patterns (High, no content read)
//	Phase 2: frontmatter key analysis        (Medium)
//	Phase 3: content structure signals       (Medium)
//	Phase 4: keyword detection               (Low)
//
// Tree scans prune directories through a four-layer exclusion filter before
// any file is touched: an always-exclude set, the root ignore file, extended
// defaults, and per-scan escape hatches. The classifier is a best-effort
// heuristic — its contract is determinism and layering, not semantic
// accuracy.
package classifier

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Engine runs the classification phases. The zero value is not usable;
// construct with New.
type Engine struct {
	// Reader supplies file content for Phases 2-4. Defaults to os.ReadFile.
	Reader ContentReader
	// LoadIgnore produces the Layer 2 matcher for a scan root. Defaults to
	// LoadGitignore.
	LoadIgnore IgnoreLoader
}

// New returns an Engine wired to the local filesystem.
func New() *Engine {
	return &Engine{
		Reader:     os.ReadFile,
		LoadIgnore: LoadGitignore,
	}
}

// ClassifyFile classifies a single file. Phase 1 runs first and returns
// without any I/O on a hit; with analyzeContent set, a miss falls through
// to Phases 2-4 on the file's content. Read failures are tolerated and
// downgrade the file to (Other, Low) — classification never fails.
func (e *Engine) ClassifyFile(path string, analyzeContent bool) (Category, Confidence) {
	return e.classify(path, path, analyzeContent)
}

// classify runs the phase cascade. relPath feeds the path patterns of
// Phase 1; fullPath is what the reader opens.
func (e *Engine) classify(relPath, fullPath string, analyzeContent bool) (Category, Confidence) {
	if cat, ok := classifyByPath(relPath); ok {
		return cat, ConfidenceHigh
	}
	if !analyzeContent {
		return CategoryOther, ConfidenceLow
	}

	raw, err := e.Reader(fullPath)
	if err != nil {
		log.Debugf("classifier: reading %s: %v", fullPath, err)
		return CategoryOther, ConfidenceLow
	}
	content := decodeContent(raw)

	if cat, ok := classifyByFrontmatter(content); ok {
		return cat, ConfidenceMedium
	}
	if cat, ok := classifyByStructure(content); ok {
		return cat, ConfidenceMedium
	}
	if cat, ok := classifyByKeywords(content); ok {
		return cat, ConfidenceLow
	}
	return CategoryOther, ConfidenceLow
}
