package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByFrontmatter_SkillSignature(t *testing.T) {
	content := "---\nname: review-helper\ndescription: Reviews pull requests\n---\n# Body\n"
	got, ok := classifyByFrontmatter(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryAITooling, got)
}

func TestClassifyByFrontmatter_TwoAIIndicators(t *testing.T) {
	// name+model is not the skill signature but still two AI indicators.
	content := "---\nname: helper\nmodel: fast\n---\n"
	got, ok := classifyByFrontmatter(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryAITooling, got)
}

func TestClassifyByFrontmatter_ConfigIndicators(t *testing.T) {
	content := "---\nversion: 2\nauthor: someone\n---\n"
	got, ok := classifyByFrontmatter(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryConfig, got)
}

func TestClassifyByFrontmatter_AIWinsOverConfig(t *testing.T) {
	// AI indicators are checked before config indicators.
	content := "---\nname: thing\ndescription: does things\nversion: 1\n---\n"
	got, ok := classifyByFrontmatter(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryAITooling, got)
}

func TestClassifyByFrontmatter_NoOpinion(t *testing.T) {
	cases := map[string]string{
		"no block":             "just some text\n",
		"no closing delimiter": "---\nname: x\ndescription: y\n",
		"empty block":          "---\n---\n",
		"no colon lines":       "---\njust words\n---\n",
		"unknown keys":         "---\ntitle: x\nauthor: y\n---\n",
		"single AI indicator":  "---\nprompt: hello\n---\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := classifyByFrontmatter(content)
			assert.False(t, ok)
		})
	}
}

func TestParseFrontmatterKeys_SplitsOnFirstColon(t *testing.T) {
	keys := parseFrontmatterKeys("---\nDescription: a: b: c\nAllowed-Tools: [read, write\n---\n")
	assert.NotNil(t, keys)
	// Keys are lower-cased; malformed YAML values are irrelevant.
	assert.Contains(t, keys, "description")
	assert.Contains(t, keys, "allowed-tools")
	assert.Len(t, keys, 2)
}
