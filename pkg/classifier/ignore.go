package classifier

import (
	"os"
	"path/filepath"

	"github.com/woozymasta/pathrules"
)

// IgnoreFileName is the ignore-pattern file looked up at the scan root.
const IgnoreFileName = ".gitignore"

// IgnoreMatcher tests a root-relative directory path (forward slashes, with
// trailing slash) against compiled ignore patterns. It backs exclusion
// Layer 2; when a matcher is present it is authoritative and Layer 3 is
// never consulted.
type IgnoreMatcher interface {
	Match(relDirPath string) bool
}

// IgnoreLoader produces the optional ignore matcher for a scan root.
// Returning (nil, nil) means no ignore file exists; an error means the file
// exists but could not be compiled, which the engine downgrades to a
// warning and a Layer 3 fallback.
type IgnoreLoader func(root string) (IgnoreMatcher, error)

// LoadGitignore compiles the .gitignore at the scan root, if any, into an
// IgnoreMatcher with gitignore semantics.
func LoadGitignore(root string) (IgnoreMatcher, error) {
	path := filepath.Join(root, IgnoreFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	rules, err := pathrules.LoadRulesFile(path, pathrules.ParseOptions{})
	if err != nil {
		return nil, err
	}
	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{})
	if err != nil {
		return nil, err
	}
	return &gitignoreMatcher{matcher: matcher}, nil
}

type gitignoreMatcher struct {
	matcher *pathrules.Matcher
}

func (g *gitignoreMatcher) Match(relDirPath string) bool {
	return g.matcher.Excluded(relDirPath, true)
}
