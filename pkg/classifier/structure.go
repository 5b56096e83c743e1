package classifier

// structureSampleSize bounds how much content Phase 3 inspects.
const structureSampleSize = 5000

// classifyByStructure is Phase 3: count structural signals in the first
// 5 KB of content. A category's score is the number of its signal patterns
// that match at least once (not total occurrences). Categories are checked
// in the registry's priority order and the first to reach two signals wins.
func classifyByStructure(content string) (Category, bool) {
	sample := content
	if len(sample) > structureSampleSize {
		sample = sample[:structureSampleSize]
	}

	for _, set := range structureSignals {
		count := 0
		for _, re := range set.signals {
			if re.MatchString(sample) {
				count++
				if count >= 2 {
					return set.category, true
				}
			}
		}
	}
	return CategoryOther, false
}
