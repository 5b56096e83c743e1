package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByKeywords_HighestScoreWins(t *testing.T) {
	// Three docs keywords against two config keywords.
	content := "This guide gives an overview and a tutorial.\nAlso mentions config and settings once.\n"
	got, ok := classifyByKeywords(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryDocs, got)
}

func TestClassifyByKeywords_CaseInsensitive(t *testing.T) {
	content := "GUIDE to the OVERVIEW and TUTORIAL material\n"
	got, ok := classifyByKeywords(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryDocs, got)
}

func TestClassifyByKeywords_TieBreaksToEarliestCategory(t *testing.T) {
	// Two config keywords and two AI keywords; Config is declared earlier
	// in the keyword table, so the tie goes to it.
	content := "settings and environment for the agent prompt\n"
	got, ok := classifyByKeywords(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryConfig, got)
}

func TestClassifyByKeywords_SingleKeywordDoesNotQualify(t *testing.T) {
	_, ok := classifyByKeywords("a lonely dataset reference\n")
	assert.False(t, ok)
}

func TestClassifyByKeywords_NoKeywords(t *testing.T) {
	_, ok := classifyByKeywords("nothing relevant here\n")
	assert.False(t, ok)
}

func TestClassifyByKeywords_SampleBounded(t *testing.T) {
	// Keywords beyond the 10 KB sample are not seen.
	content := strings.Repeat("z", keywordSampleSize) + " guide overview tutorial"
	_, ok := classifyByKeywords(content)
	assert.False(t, ok)
}
