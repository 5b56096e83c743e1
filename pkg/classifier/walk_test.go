package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (with parents) under root. Keys are slash paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testTree(t *testing.T) string {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"README.md":                  "# Project\n",
		"data.json":                  "{}\n",
		"src/app.rs":                 "fn main() {}\n",
		"tests/test_foo.py":          "def test_foo(): pass\n",
		"node_modules/pkg/index.js":  "module.exports = {};\n",
		"dist/bundle.js":             "var x;\n",
		".secret/token.txt":          "shh\n",
		".github/workflows/ci.yml":   "on: push\n",
		"mystery.xyz":                "qqq\n",
	})
	return root
}

func TestClassifyTree_Basic(t *testing.T) {
	root := testTree(t)
	result, stats, err := New().ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, result.Files[CategoryDocs], FileResult{Path: "README.md", Confidence: ConfidenceHigh})
	assert.Contains(t, result.Files[CategoryConfig], FileResult{Path: "data.json", Confidence: ConfidenceHigh})
	assert.Contains(t, result.Files[CategorySource], FileResult{Path: "src/app.rs", Confidence: ConfidenceHigh})
	assert.Contains(t, result.Files[CategoryTests], FileResult{Path: "tests/test_foo.py", Confidence: ConfidenceHigh})
	// Unmatched file, content analysis off.
	assert.Contains(t, result.Files[CategoryOther], FileResult{Path: "mystery.xyz", Confidence: ConfidenceLow})
	// .github is on the dot-directory allow-list and classifies as Docs.
	assert.Contains(t, result.Files[CategoryDocs], FileResult{Path: ".github/workflows/ci.yml", Confidence: ConfidenceHigh})

	assert.Equal(t, 1, stats.Layer1Always, "node_modules")
	assert.Equal(t, 1, stats.Layer3Defaults, "dist")
	assert.Equal(t, 1, stats.HiddenDirs, ".secret")
	assert.Equal(t, 0, stats.Layer2Ignore)
	assert.Equal(t, []string{".secret", "dist", "node_modules"}, stats.ExcludedDirs)
}

func TestClassifyTree_ExclusionIsSubtreeTransitive(t *testing.T) {
	root := testTree(t)
	result, stats, err := New().ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	for _, c := range Categories {
		for _, f := range result.Files[c] {
			for _, prefix := range []string{"node_modules/", "dist/", ".secret/"} {
				assert.False(t, len(f.Path) >= len(prefix) && f.Path[:len(prefix)] == prefix,
					"%s leaked from excluded directory", f.Path)
			}
		}
	}
	assert.Contains(t, stats.ExcludedDirs, "node_modules")
	assert.Contains(t, stats.ExcludedDirs, "dist")
	assert.Contains(t, stats.ExcludedDirs, ".secret")
}

func TestClassifyTree_PartitionsFiles(t *testing.T) {
	root := testTree(t)
	result, _, err := New().ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	seen := map[string]int{}
	for _, c := range Categories {
		for _, f := range result.Files[c] {
			seen[f.Path]++
		}
	}
	// Six files survive exclusion; each appears exactly once.
	assert.Len(t, seen, 6)
	for path, n := range seen {
		assert.Equal(t, 1, n, path)
	}
}

func TestClassifyTree_Idempotent(t *testing.T) {
	root := testTree(t)
	e := New()
	r1, s1, err := e.ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)
	r2, s2, err := e.ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
}

func TestClassifyTree_ResultsSortedByPath(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/zeta.go":  "package zeta\n",
		"src/alpha.go": "package alpha\n",
		"src/mid.go":   "package mid\n",
	})
	result, _, err := New().ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	paths := []string{}
	for _, f := range result.Files[CategorySource] {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"src/alpha.go", "src/mid.go", "src/zeta.go"}, paths)
}

func TestClassifyTree_IncludeIgnored(t *testing.T) {
	root := testTree(t)
	opts := DefaultOptions()
	opts.IncludeIgnored = true
	result, stats, err := New().ClassifyTree(root, opts)
	require.NoError(t, err)

	// Layer 1 still prunes node_modules.
	assert.Equal(t, 1, stats.Layer1Always)
	assert.Equal(t, 0, stats.Layer3Defaults)
	// dist is scanned now.
	assert.Contains(t, result.Files[CategorySource], FileResult{Path: "dist/bundle.js", Confidence: ConfidenceHigh})
}

func TestClassifyTree_IncludeAll(t *testing.T) {
	root := testTree(t)
	opts := DefaultOptions()
	opts.IncludeAll = true
	result, stats, err := New().ClassifyTree(root, opts)
	require.NoError(t, err)

	// node_modules contents are scanned and categorized normally.
	assert.Contains(t, result.Files[CategorySource], FileResult{Path: "node_modules/pkg/index.js", Confidence: ConfidenceHigh})
	assert.Equal(t, 0, stats.Layer1Always)
	assert.Equal(t, 0, stats.Layer3Defaults)
	// The hidden-directory rule is separate from the layers and still holds.
	assert.Equal(t, 1, stats.HiddenDirs)
}

func TestClassifyTree_Layer2Authoritative(t *testing.T) {
	root := testTree(t)
	e := New()
	e.LoadIgnore = func(string) (IgnoreMatcher, error) {
		return &fakeMatcher{exclude: map[string]bool{"src/": true}}, nil
	}
	result, stats, err := e.ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	// src matched the ignore file.
	assert.NotContains(t, result.Files[CategorySource], FileResult{Path: "src/app.rs", Confidence: ConfidenceHigh})
	assert.Equal(t, 1, stats.Layer2Ignore)
	// dist did not match; with a matcher present Layer 3 is not consulted,
	// so dist is scanned.
	assert.Contains(t, result.Files[CategorySource], FileResult{Path: "dist/bundle.js", Confidence: ConfidenceHigh})
	assert.Equal(t, 0, stats.Layer3Defaults)
	assert.Contains(t, stats.ExcludedDirs, "src")
	assert.NotContains(t, stats.ExcludedDirs, "dist")
}

func TestClassifyTree_IgnoreLoaderFailureFallsBack(t *testing.T) {
	root := testTree(t)
	e := New()
	e.LoadIgnore = func(string) (IgnoreMatcher, error) {
		return nil, assert.AnError
	}
	_, stats, err := e.ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	// Compile failure is non-fatal; Layer 3 defaults apply for the scan.
	assert.Equal(t, 1, stats.Layer3Defaults, "dist pruned by fallback defaults")
}

func TestClassifyTree_AnalyzeContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"mystery.xyz": "assert the widget\nrun under pytest\n",
	})
	opts := DefaultOptions()
	opts.AnalyzeContent = true
	result, _, err := New().ClassifyTree(root, opts)
	require.NoError(t, err)

	assert.Contains(t, result.Files[CategoryTests], FileResult{Path: "mystery.xyz", Confidence: ConfidenceMedium})
}

func TestClassifyTree_RootErrors(t *testing.T) {
	_, _, err := New().ClassifyTree(filepath.Join(t.TempDir(), "missing"), DefaultOptions())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, _, err = New().ClassifyTree(file, DefaultOptions())
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestClassifyTree_EmptyCategoriesPresent(t *testing.T) {
	root := t.TempDir()
	result, stats, err := New().ClassifyTree(root, DefaultOptions())
	require.NoError(t, err)

	for _, c := range Categories {
		assert.NotNil(t, result.Files[c])
	}
	assert.Equal(t, 0, result.TotalFiles())
	assert.Equal(t, 0, stats.Total())
	assert.Equal(t, []string{}, stats.ExcludedDirs)
}
