package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidManifest(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "silkscreen-tidy",
		"version": "1.2.0",
		"operations": ["replace-absolute", "add-absolute"],
		"defaultLanguage": "english"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "silkscreen-tidy", m.Name)
	assert.True(t, m.HasOperation("add-absolute"))
	assert.False(t, m.HasOperation("replace-relative"))
}

func TestParseMissingRequiredFieldFails(t *testing.T) {
	_, err := Parse([]byte(`{"name": "x"}`))
	assert.Error(t, err)
}

func TestParseUnknownOperationFails(t *testing.T) {
	_, err := Parse([]byte(`{
		"name": "x",
		"version": "1.0.0",
		"operations": ["teleport"]
	}`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`{
		"name": "x",
		"version": "1.0.0",
		"operations": ["none"],
		"unexpected": true
	}`))
	assert.Error(t, err)
}

func TestParseInvalidJSONFails(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plugin.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "tidy",
		"version": "0.1.0",
		"operations": ["none"]
	}`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tidy", m.Name)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
