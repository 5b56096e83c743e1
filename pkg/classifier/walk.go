package classifier

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// ErrNotDirectory is returned when the scan root exists but is not a
// directory. Missing roots surface the underlying os error. Validating the
// root up front is the caller's job; the engine only reports it.
var ErrNotDirectory = errors.New("scan root is not a directory")

// ClassifyTree walks the tree under root depth-first in lexicographic
// order, prunes directories through the exclusion filter, classifies every
// surviving file, and returns the per-category results together with the
// accumulated exclusion stats. Files under a pruned directory never appear
// in any list, and each category's list is sorted by path.
func (e *Engine) ClassifyTree(root string, opts Options) (*Result, *ExclusionStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, fmt.Errorf("scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	matcher, err := e.loadIgnoreMatcher(root)
	if err != nil {
		// Matcher failure is never fatal: warn and fall back to the
		// Layer 3 defaults for the whole scan.
		log.Warnf("could not compile %s (%v), using default exclusions", IgnoreFileName, err)
		matcher = nil
	}

	result := NewResult()
	x := newExcluder(opts, matcher)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Unreadable entries are skipped, not fatal.
			log.Debugf("classifier: walking %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if x.exclude(d.Name(), rel) {
				// Pruning skips the whole subtree; no rule runs again
				// for anything beneath this directory.
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		category, confidence := e.classify(rel, path, opts.AnalyzeContent)
		result.Files[category] = append(result.Files[category], FileResult{
			Path:       rel,
			Confidence: confidence,
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	for _, c := range Categories {
		list := result.Files[c]
		sort.Slice(list, func(i, j int) bool { return list[i].Path < list[j].Path })
	}
	return result, x.finalStats(), nil
}

func (e *Engine) loadIgnoreMatcher(root string) (IgnoreMatcher, error) {
	if e.LoadIgnore == nil {
		return nil, nil
	}
	return e.LoadIgnore(root)
}
