package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByStructure_TestSignals(t *testing.T) {
	// Two distinct test signals reach the threshold.
	content := "def test_widget():\n    assert widget.ok\n\n# run with pytest\n"
	got, ok := classifyByStructure(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryTests, got)
}

func TestClassifyByStructure_ScriptSignals(t *testing.T) {
	content := "#!/usr/bin/env python\nimport argparse\n\nparser = argparse.ArgumentParser()\n"
	got, ok := classifyByStructure(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryScripts, got)
}

func TestClassifyByStructure_SourceSignals(t *testing.T) {
	content := "import os\n\nclass Widget:\n    pass\n"
	got, ok := classifyByStructure(content)
	assert.True(t, ok)
	assert.Equal(t, CategorySource, got)
}

func TestClassifyByStructure_DocsSignals(t *testing.T) {
	// Markdown headers are one signal; the RST-style underline is a second.
	content := "Overview\n========\n\n# Title\n\nSome prose.\n"
	got, ok := classifyByStructure(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryDocs, got)
}

func TestClassifyByStructure_PriorityOrder(t *testing.T) {
	// Both test and source signals are present; Tests is earlier in the
	// priority order and wins.
	content := "import unittest\n\nclass WidgetCase(unittest.TestCase):\n    def test_one(self):\n        assert True\n"
	got, ok := classifyByStructure(content)
	assert.True(t, ok)
	assert.Equal(t, CategoryTests, got)
}

func TestClassifyByStructure_SingleSignalIsNotEnough(t *testing.T) {
	_, ok := classifyByStructure("assert statements alone prove nothing\n")
	assert.False(t, ok)
}

func TestClassifyByStructure_OnlyFirst5KBCounts(t *testing.T) {
	// Signals buried past the sample boundary are invisible.
	content := strings.Repeat("x\n", structureSampleSize/2) + "\nassert a\npytest\n"
	_, ok := classifyByStructure(content)
	assert.False(t, ok)
}

func TestClassifyByStructure_SignalCountIsPerPattern(t *testing.T) {
	// Many hits on one pattern still count as a single signal.
	content := "assert a\nassert b\nassert c\n"
	_, ok := classifyByStructure(content)
	assert.False(t, ok)
}
