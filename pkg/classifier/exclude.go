package classifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExclusionStats records which layer pruned each directory during a scan.
// It is accumulated once by the traversal and read-only afterward.
type ExclusionStats struct {
	Layer1Always   int      `json:"layer1_always"`
	Layer2Ignore   int      `json:"layer2_gitignore"`
	Layer3Defaults int      `json:"layer3_defaults"`
	HiddenDirs     int      `json:"hidden_dirs"`
	ExcludedDirs   []string `json:"excluded_dirs"`
}

// Total returns the number of directories excluded across all layers.
func (s *ExclusionStats) Total() int {
	return s.Layer1Always + s.Layer2Ignore + s.Layer3Defaults + s.HiddenDirs
}

// Summary renders a one-line human-readable account of the exclusions.
func (s *ExclusionStats) Summary() string {
	var parts []string
	if s.Layer1Always > 0 {
		parts = append(parts, fmt.Sprintf("%d via Layer 1 (always-exclude)", s.Layer1Always))
	}
	if s.Layer2Ignore > 0 {
		parts = append(parts, fmt.Sprintf("%d via %s", s.Layer2Ignore, IgnoreFileName))
	}
	if s.Layer3Defaults > 0 {
		parts = append(parts, fmt.Sprintf("%d via Layer 3 (defaults)", s.Layer3Defaults))
	}
	if s.HiddenDirs > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden directories", s.HiddenDirs))
	}
	if len(parts) == 0 {
		return "No directories excluded"
	}
	return fmt.Sprintf("Excluded %d directories: %s", s.Total(), strings.Join(parts, ", "))
}

// excluder applies the hidden-directory rule and the four exclusion layers
// to each directory the walk encounters, accumulating stats as it goes.
type excluder struct {
	opts    Options
	matcher IgnoreMatcher
	stats   ExclusionStats
}

func newExcluder(opts Options, matcher IgnoreMatcher) *excluder {
	return &excluder{opts: opts, matcher: matcher}
}

// exclude decides prune/keep for one directory. name is the directory's
// base name, rel its root-relative path (forward slashes, no trailing
// slash). Layer order is strict:
//
//	hidden check -> Layer 1 -> Layer 4 early exit -> Layer 2 -> Layer 3
//
// When an ignore matcher is present, Layer 2 is authoritative: a
// non-matching directory is kept without consulting Layer 3.
func (x *excluder) exclude(name, rel string) bool {
	if x.opts.ExcludeHidden && isHiddenDir(name) {
		x.stats.HiddenDirs++
		x.record(rel)
		return true
	}

	// Layer 1: always exclude, unless IncludeAll.
	if !x.opts.IncludeAll {
		if _, ok := alwaysExcludeDirs[name]; ok {
			x.stats.Layer1Always++
			x.record(rel)
			return true
		}
	}

	// Layer 4 escape hatches bypass Layers 2-3.
	if x.opts.IncludeIgnored || x.opts.IncludeAll {
		return false
	}

	// Layer 2: ignore-file matcher, authoritative when present.
	if x.matcher != nil {
		if x.matcher.Match(rel + "/") {
			x.stats.Layer2Ignore++
			x.record(rel)
			return true
		}
		return false
	}

	// Layer 3: extended defaults, reached only without a matcher.
	for _, entry := range extendedExcludeDirs {
		if strings.ContainsRune(entry, '*') {
			if ok, _ := doublestar.Match(entry, name); ok {
				x.stats.Layer3Defaults++
				x.record(rel)
				return true
			}
		} else if entry == name {
			x.stats.Layer3Defaults++
			x.record(rel)
			return true
		}
	}

	return false
}

func (x *excluder) record(rel string) {
	x.stats.ExcludedDirs = append(x.stats.ExcludedDirs, rel)
}

// finalStats sorts the excluded-dir list so repeated scans of an unchanged
// tree compare equal.
func (x *excluder) finalStats() *ExclusionStats {
	stats := x.stats
	if stats.ExcludedDirs == nil {
		stats.ExcludedDirs = []string{}
	}
	sort.Strings(stats.ExcludedDirs)
	return &stats
}

// isHiddenDir reports whether a directory name is hidden and not on the
// dot-directory allow-list.
func isHiddenDir(name string) bool {
	if !strings.HasPrefix(name, ".") {
		return false
	}
	_, allowed := allowedDotDirs[name]
	return !allowed
}
