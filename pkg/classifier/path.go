package classifier

import (
	"path"
	"path/filepath"
	"strings"
)

// classifyByPath is Phase 1: classification from the file's location and
// name alone, no I/O. The rule order below is part of the contract — the
// first match wins, and a hit here always carries High confidence.
func classifyByPath(relPath string) (Category, bool) {
	relPath = filepath.ToSlash(relPath)
	name := path.Base(relPath)
	ext := strings.ToLower(path.Ext(name))
	dir := path.Dir(relPath)

	// 1. Directory patterns: any path segment naming a conventional
	// directory decides the category. Table order breaks ambiguity.
	for _, dp := range dirPatterns {
		if dp.re.MatchString(dir) {
			return dp.category, true
		}
	}

	// 2. AI tooling files.
	if _, ok := aiFiles[name]; ok {
		return CategoryAITooling, true
	}
	for _, re := range aiPatterns {
		if re.MatchString(name) {
			return CategoryAITooling, true
		}
	}

	// 3. Schema and API-spec files document structure; they go to Docs.
	if _, ok := schemaFiles[name]; ok {
		return CategoryDocs, true
	}
	for _, re := range schemaPatterns {
		if re.MatchString(name) {
			return CategoryDocs, true
		}
	}

	// 4. Test naming conventions.
	for _, re := range testPatterns {
		if re.MatchString(name) {
			return CategoryTests, true
		}
	}

	// 5. Known config files.
	if _, ok := configFiles[name]; ok {
		return CategoryConfig, true
	}
	for _, re := range configPatterns {
		if re.MatchString(name) {
			return CategoryConfig, true
		}
	}

	// 6. Doc basenames (README, CHANGELOG, ...), any extension.
	stem := strings.ToUpper(strings.TrimSuffix(name, path.Ext(name)))
	if _, ok := docBasenames[stem]; ok {
		return CategoryDocs, true
	}
	if strings.HasPrefix(strings.ToUpper(name), "README") {
		return CategoryDocs, true
	}

	// 7. Script extensions.
	if _, ok := scriptExtensions[ext]; ok {
		return CategoryScripts, true
	}

	// 8. Source extensions.
	if _, ok := sourceExtensions[ext]; ok {
		return CategorySource, true
	}

	// 9. Data extensions. A structured file sitting at the scan root is
	// usually project config rather than data, so json/yaml/yml without a
	// parent subdirectory reclassify to Config.
	if _, ok := dataExtensions[ext]; ok {
		if dir != "." {
			return CategoryData, true
		}
		if _, ok := rootConfigExtensions[ext]; ok {
			return CategoryConfig, true
		}
		return CategoryData, true
	}

	return CategoryOther, false
}
