package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(ATSFile, "enhance-feedback")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Analyze this resume for ATS optimization")
	assert.Contains(t, prompt, "{{.Score}}")
	assert.Contains(t, prompt, "{{.Feedback}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(ATSFile, "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "some-key") })
	assert.NotPanics(t, func() { assert.NotEmpty(t, MustGet(ATSFile, "no-issues")) })
}

func TestFormat(t *testing.T) {
	result := Format("Score {{.Score}}% for {{.Name}}", map[string]string{
		"Score": "72.5",
		"Name":  "Jane Doe",
	})
	assert.Equal(t, "Score 72.5% for Jane Doe", result)
}

func TestFormat_MissingDataLeavesPlaceholder(t *testing.T) {
	assert.Equal(t, "Hello {{.Name}}", Format("Hello {{.Name}}", map[string]string{}))
	assert.Equal(t, "No placeholders", Format("No placeholders", map[string]string{"Key": "Value"}))
}

func TestFormat_ValuesAreNotReexpanded(t *testing.T) {
	result := Format("{{.A}}", map[string]string{"A": "{{.B}}", "B": "x"})
	assert.Equal(t, "{{.B}}", result)
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(ATSFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"enhance-feedback", "no-issues"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get(ATSFile, "enhance-feedback")
	require.NoError(t, err)
	second, err := Get(ATSFile, "enhance-feedback")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
