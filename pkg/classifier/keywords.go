package classifier

import "strings"

// keywordSampleSize bounds how much content Phase 4 inspects.
const keywordSampleSize = 10000

// classifyByKeywords is Phase 4: the weakest heuristic, used only when
// everything else has declined. A category qualifies when at least two of
// its keywords occur as literal substrings in the lower-cased sample; the
// qualifying category with the highest score wins, ties going to the
// earliest entry in the keyword table.
func classifyByKeywords(content string) (Category, bool) {
	sample := content
	if len(sample) > keywordSampleSize {
		sample = sample[:keywordSampleSize]
	}
	sample = strings.ToLower(sample)

	best := CategoryOther
	bestScore := 0
	for _, set := range categoryKeywords {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(sample, kw) {
				score++
			}
		}
		if score >= 2 && score > bestScore {
			best = set.category
			bestScore = score
		}
	}
	if bestScore == 0 {
		return CategoryOther, false
	}
	return best, true
}
