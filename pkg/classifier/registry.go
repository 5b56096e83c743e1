package classifier

import "regexp"

// Pattern registry: process-wide immutable tables consulted by the phases
// and the exclusion filter. Everything here is initialized once at package
// load and never mutated, so no synchronization is needed.

// dirPattern maps a directory-path regex to a category. The slice order is
// significant: earlier entries win when a path matches several patterns.
type dirPattern struct {
	re       *regexp.Regexp
	category Category
}

var dirPatterns = []dirPattern{
	{regexp.MustCompile(`(?i)(^|/)tests?(/|$)`), CategoryTests},
	{regexp.MustCompile(`(?i)(^|/)__tests__(/|$)`), CategoryTests},
	{regexp.MustCompile(`(?i)(^|/)spec(/|$)`), CategoryTests},
	{regexp.MustCompile(`(?i)(^|/)e2e(/|$)`), CategoryTests},
	{regexp.MustCompile(`(?i)(^|/)docs?(/|$)`), CategoryDocs},
	{regexp.MustCompile(`(?i)(^|/)documentation(/|$)`), CategoryDocs},
	{regexp.MustCompile(`(?i)(^|/)references?(/|$)`), CategoryDocs},
	{regexp.MustCompile(`(?i)(^|/)\.github(/|$)`), CategoryDocs},
	{regexp.MustCompile(`(?i)(^|/)scripts?(/|$)`), CategoryScripts},
	{regexp.MustCompile(`(?i)(^|/)bin(/|$)`), CategoryScripts},
	{regexp.MustCompile(`(?i)(^|/)tools(/|$)`), CategoryScripts},
	{regexp.MustCompile(`(?i)(^|/)src(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)lib(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)pkg(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)app(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)core(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)backend(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)frontend(/|$)`), CategorySource},
	{regexp.MustCompile(`(?i)(^|/)data(/|$)`), CategoryData},
	{regexp.MustCompile(`(?i)(^|/)datasets?(/|$)`), CategoryData},
	{regexp.MustCompile(`(?i)(^|/)fixtures(/|$)`), CategoryData},
	{regexp.MustCompile(`(?i)(^|/)samples?(/|$)`), CategoryData},
	{regexp.MustCompile(`(?i)(^|/)\.claude(/|$)`), CategoryAITooling},
	{regexp.MustCompile(`(?i)(^|/)\.cursor(/|$)`), CategoryAITooling},
	{regexp.MustCompile(`(?i)(^|/)\.aider(/|$)`), CategoryAITooling},
	{regexp.MustCompile(`(?i)(^|/)prompts?(/|$)`), CategoryAITooling},
	{regexp.MustCompile(`(?i)(^|/)config(/|$)`), CategoryConfig},
	{regexp.MustCompile(`(?i)(^|/)conf(/|$)`), CategoryConfig},
	{regexp.MustCompile(`(?i)(^|/)\.config(/|$)`), CategoryConfig},
	{regexp.MustCompile(`(?i)(^|/)\.vscode(/|$)`), CategoryConfig},
	{regexp.MustCompile(`(?i)(^|/)\.github/workflows(/|$)`), CategoryConfig},
}

// Exact config filenames. Lock files, manifests and toolchain files land
// here regardless of where they sit in the tree.
var configFiles = map[string]struct{}{
	".gitignore": {}, ".gitattributes": {}, ".env": {}, ".env.example": {}, ".env.local": {},
	".editorconfig": {}, ".prettierrc": {}, ".eslintrc": {}, ".stylelintrc": {},
	"Makefile": {}, "Dockerfile": {}, "Procfile": {}, "Vagrantfile": {},
	"package.json": {}, "package-lock.json": {}, "yarn.lock": {}, "pnpm-lock.yaml": {},
	"pyproject.toml": {}, "setup.py": {}, "setup.cfg": {}, "MANIFEST.in": {},
	"requirements.txt": {}, "Pipfile": {}, "Pipfile.lock": {}, "poetry.lock": {},
	"Gemfile": {}, "Gemfile.lock": {}, "Cargo.toml": {}, "Cargo.lock": {},
	"go.mod": {}, "go.sum": {}, "composer.json": {}, "composer.lock": {},
	"tsconfig.json": {}, "jsconfig.json": {}, "babel.config.js": {},
	"webpack.config.js": {}, "vite.config.js": {}, "rollup.config.js": {},
	"tox.ini": {}, "pytest.ini": {}, ".coveragerc": {}, "codecov.yml": {},
}

var configPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*\.config\.(js|ts|mjs|cjs|json)$`),
	regexp.MustCompile(`(?i)^.*rc\.(js|json|yaml|yml)$`),
	regexp.MustCompile(`(?i)^\.[a-z]+rc$`),
	regexp.MustCompile(`(?i)^.*\.(toml|ini|cfg)$`),
	regexp.MustCompile(`(?i)^docker-compose.*\.ya?ml$`),
	regexp.MustCompile(`(?i)^requirements.*\.txt$`),
}

var testPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*_test\.[a-z]+$`),
	regexp.MustCompile(`(?i)^.*\.test\.[a-z]+$`),
	regexp.MustCompile(`(?i)^.*_spec\.[a-z]+$`),
	regexp.MustCompile(`(?i)^.*\.spec\.[a-z]+$`),
	regexp.MustCompile(`(?i)^test_.*\.[a-z]+$`),
	regexp.MustCompile(`(?i)^conftest\.py$`),
}

// Doc basenames are matched against the upper-cased file stem.
var docBasenames = map[string]struct{}{
	"README": {}, "CHANGELOG": {}, "CONTRIBUTING": {}, "LICENSE": {}, "AUTHORS": {}, "HISTORY": {},
}

var scriptExtensions = map[string]struct{}{
	".sh": {}, ".bash": {}, ".zsh": {}, ".fish": {}, ".ps1": {}, ".bat": {}, ".cmd": {},
}

var sourceExtensions = map[string]struct{}{
	".py": {}, ".js": {}, ".ts": {}, ".jsx": {}, ".tsx": {}, ".mjs": {}, ".cjs": {},
	".go": {}, ".rs": {}, ".java": {}, ".kt": {}, ".scala": {}, ".clj": {},
	".rb": {}, ".php": {}, ".c": {}, ".cpp": {}, ".cc": {}, ".h": {}, ".hpp": {},
	".swift": {}, ".m": {}, ".mm": {}, ".cs": {}, ".fs": {}, ".ex": {}, ".exs": {},
	".hs": {}, ".ml": {}, ".elm": {}, ".vue": {}, ".svelte": {},
}

var dataExtensions = map[string]struct{}{
	".json": {}, ".csv": {}, ".tsv": {}, ".parquet": {}, ".arrow": {}, ".feather": {},
	".sqlite": {}, ".db": {}, ".sql": {}, ".xml": {}, ".yaml": {}, ".yml": {},
	".pickle": {}, ".pkl": {}, ".npy": {}, ".npz": {}, ".h5": {}, ".hdf5": {}, ".jsonl": {},
}

// Root-level structured files in these formats are usually project config,
// not data; Phase 1 rule 9 reclassifies them.
var rootConfigExtensions = map[string]struct{}{
	".json": {}, ".yaml": {}, ".yml": {},
}

var aiFiles = map[string]struct{}{
	"SKILL.md": {}, "CLAUDE.md": {}, ".cursorrules": {}, ".cursorignore": {},
}

var aiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\.aider.*`),
	regexp.MustCompile(`(?i)^.*\.prompt(\.md)?$`),
}

// Schema and API-specification files document structure; they classify as
// Docs, not Data.
var schemaFiles = map[string]struct{}{
	"schema.json": {}, "openapi.json": {}, "openapi.yaml": {}, "openapi.yml": {},
	"swagger.json": {}, "swagger.yaml": {}, "swagger.yml": {},
}

var schemaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*\.schema\.json$`),
	regexp.MustCompile(`(?i)^.*\.schema\.ya?ml$`),
	regexp.MustCompile(`(?i)(^|/)schema\.sql$`),
	regexp.MustCompile(`(?i)^.*\.graphql$`),
	regexp.MustCompile(`(?i)^.*\.proto$`),
}

// Phase 2 indicator key sets, matched against lower-cased frontmatter keys.
var configFrontmatterKeys = map[string]struct{}{
	"settings": {}, "version": {}, "env": {}, "paths": {}, "database": {}, "config": {},
}

var aiFrontmatterKeys = map[string]struct{}{
	"name": {}, "description": {}, "allowed-tools": {}, "model": {}, "prompt": {},
}

// signalSet is one Phase 3 entry: a category plus the regexes that signal
// it. Slice order sets category priority; a category wins as soon as two of
// its signals match the sample.
type signalSet struct {
	category Category
	signals  []*regexp.Regexp
}

var structureSignals = []signalSet{
	{CategoryTests, compileSignals(
		`\bassert\b`, `\bexpect\(`, `\bpytest\b`, `\bunittest\b`,
		`\bdescribe\(`, `\bit\(`, `\btest\(`, `\bbeforeEach\b`, `\bafterEach\b`,
		`TestCase`, `@pytest`, `@test`,
	)},
	{CategoryScripts, compileSignals(
		`\bargparse\b`, `\bclick\b`, `\bsys\.argv\b`,
		`if\s+__name__\s*==\s*['"]__main__['"]`,
		`^#!`, `\bgetopt\b`, `\bdocopt\b`,
	)},
	{CategoryAITooling, compileSignals(
		`\bsub-agent\b`, `\bhandoff\b`, `\ballowed-tools\b`,
		`\bsystem prompt\b`, `\bworkflow\b`, `\bClaude\b`,
		`\bagent\b`, `\bskill\b`,
	)},
	{CategorySource, compileSignals(
		`^class\s+\w+`, `^def\s+\w+`, `^function\s+\w+`,
		`^import\s+`, `^from\s+\w+\s+import`, `^export\s+`,
		`module\.exports`, `^package\s+\w+`,
	)},
	{CategoryDocs, compileSignals(
		`^#{1,6}\s+\w+`,
		`^={3,}$`, `^-{3,}$`,
		`^\.\.\s+\w+::`,
	)},
	{CategoryData, compileSignals(
		`^\s*\[`, `^\s*\{`,
		`^"?\w+"?,`, `^\d+,`,
		`^[\w-]+\t[\w-]+`,
	)},
}

func compileSignals(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?im)` + p)
	}
	return res
}

// keywordSet is one Phase 4 entry. The slice keeps a fixed declaration
// order because max-score ties break toward the earliest category; an
// unordered map here would make results nondeterministic.
type keywordSet struct {
	category Category
	keywords []string
}

var categoryKeywords = []keywordSet{
	{CategoryConfig, []string{"config", "settings", "workspace", "lint", "dependencies", "environment"}},
	{CategoryTests, []string{"fixtures", "assert", "mock", "unit test", "integration", "coverage"}},
	{CategoryDocs, []string{"guide", "overview", "tutorial", "how to", "best practices", "documentation"}},
	{CategoryScripts, []string{"usage:", "examples:", "run:", "startup", "entrypoint"}},
	{CategorySource, []string{"class", "def", "function", "import", "export", "module"}},
	{CategoryData, []string{"records", "rows", "columns", "dataset"}},
	{CategoryAITooling, []string{"skill", "agent", "prompt", "workflow", "claude", "assistant"}},
}

// Exclusion Layer 1: directories that are never worth categorizing.
// Bypassed only by IncludeAll.
var alwaysExcludeDirs = map[string]struct{}{
	// JS package managers
	"node_modules": {}, "bower_components": {}, "jspm_packages": {},
	// Version control
	".git": {}, ".svn": {}, ".hg": {},
	// Python caches
	"__pycache__": {}, ".pytest_cache": {}, ".tox": {}, ".mypy_cache": {}, ".ruff_cache": {},
	// Python virtualenvs
	"venv": {}, ".venv": {},
	// Misc caches
	".cache": {}, ".npm": {}, ".yarn": {},
}

// Exclusion Layer 3: extended defaults used only when no .gitignore matcher
// is available. Entries containing a wildcard are matched as globs.
var extendedExcludeDirs = []string{
	// Build outputs
	"dist", "build", "out", "_build", "target",
	// Vendored dependencies
	"vendor",
	// Test coverage
	"coverage", ".nyc_output", "htmlcov",
	// IDE directories
	".idea",
	// Alternative virtualenv names
	"env",
	// Eggs and wheels
	"*.egg-info", ".eggs",
}

// Dot-directories kept despite the hidden-directory rule.
var allowedDotDirs = map[string]struct{}{
	".claude": {}, ".cursor": {}, ".aider": {}, ".github": {}, ".vscode": {},
}
