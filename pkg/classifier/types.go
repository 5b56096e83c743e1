package classifier

// Category is the semantic bucket a file is assigned to. Every scanned file
// resolves to exactly one category; CategoryOther is the universal fallback.
type Category string

const (
	CategoryConfig    Category = "Config"
	CategoryTests     Category = "Tests"
	CategoryDocs      Category = "Docs"
	CategoryScripts   Category = "Scripts"
	CategorySource    Category = "Source Code"
	CategoryData      Category = "Data"
	CategoryAITooling Category = "AI Tooling"
	CategoryOther     Category = "Other"
)

// Categories lists every category in display order. Result iteration and
// summary rendering follow this order.
var Categories = []Category{
	CategoryConfig,
	CategoryTests,
	CategoryDocs,
	CategoryScripts,
	CategorySource,
	CategoryData,
	CategoryAITooling,
	CategoryOther,
}

// Confidence expresses how much trust a classification deserves, tied to the
// phase that produced it: High for path-pattern hits (no content read),
// Medium for frontmatter or structure analysis, Low for keyword detection
// and the Other fallback.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// FileResult is one classified file within a category list.
type FileResult struct {
	Path       string     `json:"path"`
	Confidence Confidence `json:"confidence"`
}

// Result groups classified files by category. Paths are relative to the scan
// root and each category's list is sorted lexicographically.
type Result struct {
	Files map[Category][]FileResult `json:"files"`
}

// NewResult returns a Result with an empty list for every category so that
// callers can range over Categories without nil checks.
func NewResult() *Result {
	files := make(map[Category][]FileResult, len(Categories))
	for _, c := range Categories {
		files[c] = []FileResult{}
	}
	return &Result{Files: files}
}

// TotalFiles returns the number of classified files across all categories.
func (r *Result) TotalFiles() int {
	n := 0
	for _, list := range r.Files {
		n += len(list)
	}
	return n
}

// Options controls a tree scan.
type Options struct {
	// AnalyzeContent enables Phases 2-4 for files Phase 1 cannot place.
	AnalyzeContent bool
	// ExcludeHidden skips dot-directories not on the allow-list.
	ExcludeHidden bool
	// IncludeIgnored bypasses exclusion Layers 2-3 (.gitignore and the
	// extended defaults). Layer 1 still applies.
	IncludeIgnored bool
	// IncludeAll bypasses every exclusion layer, Layer 1 included.
	IncludeAll bool
}

// DefaultOptions returns the standard scan options: hidden directories
// excluded, content analysis off, all exclusion layers active.
func DefaultOptions() Options {
	return Options{ExcludeHidden: true}
}
