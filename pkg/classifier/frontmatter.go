package classifier

import "strings"

const frontmatterDelimiter = "---"

// parseFrontmatterKeys extracts the key set of a leading frontmatter block.
// The block is parsed as flat key:value lines, splitting each line once on
// the first colon; this is deliberately not a YAML parse — the phase only
// cares about which keys appear, and it must tolerate values a strict
// parser would reject. Returns nil when no complete block is present.
func parseFrontmatterKeys(content string) map[string]struct{} {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return nil
	}
	lines := strings.Split(content, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		// No closing delimiter: not frontmatter.
		return nil
	}

	keys := make(map[string]struct{})
	for _, line := range lines[1:end] {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:idx]))
		keys[key] = struct{}{}
	}
	if len(keys) == 0 {
		return nil
	}
	return keys
}

// classifyByFrontmatter is Phase 2: infer a category from frontmatter keys.
// A name+description pair is the skill-file signature used by AI tooling;
// two or more AI-indicator keys also qualify. Config-indicator keys are
// checked last. Yields no opinion when the block is absent or inconclusive.
func classifyByFrontmatter(content string) (Category, bool) {
	keys := parseFrontmatterKeys(content)
	if keys == nil {
		return CategoryOther, false
	}

	if containsAll(keys, "name", "description") {
		return CategoryAITooling, true
	}
	if intersectionSize(keys, aiFrontmatterKeys) >= 2 {
		return CategoryAITooling, true
	}
	if intersectionSize(keys, configFrontmatterKeys) > 0 {
		return CategoryConfig, true
	}
	return CategoryOther, false
}

func containsAll(keys map[string]struct{}, want ...string) bool {
	for _, k := range want {
		if _, ok := keys[k]; !ok {
			return false
		}
	}
	return true
}

func intersectionSize(keys, indicator map[string]struct{}) int {
	n := 0
	for k := range keys {
		if _, ok := indicator[k]; ok {
			n++
		}
	}
	return n
}
