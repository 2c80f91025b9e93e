package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverlaysProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minilang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"mini> \"\ncolor: off\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "mini> ", cfg.Prompt)
	assert.Equal(t, ColorOff, cfg.Color)
	assert.Equal(t, Default().HistoryFile, cfg.HistoryFile)
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unterminated"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
