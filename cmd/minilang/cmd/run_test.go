package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFileMissingPathReturnsError(t *testing.T) {
	err := runFile(nil, []string{filepath.Join(t.TempDir(), "missing.mini")})
	assert.Error(t, err)
}

func TestRunFileExecutesProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.mini")
	require.NoError(t, os.WriteFile(path, []byte(`print("hi")`), 0o644))

	assert.NoError(t, runFile(nil, []string{path}))
}
