package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/derrors"
)

func TestInit_Local(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, Init(InitParams{Dir: dir, Out: &out}))

	path := filepath.Join(dir, ".pipseed.yml")
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Created sample config: "+path)

	// The sample must pass its own validation.
	result, err := config.Validate(path)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)
}

func TestInit_Global(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	var out bytes.Buffer

	require.NoError(t, Init(InitParams{Global: true, Out: &out}))

	path := filepath.Join(xdg, "pipseed", "config.yml")
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Created global config: "+path)
}

func TestInit_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pipseed.yml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: keep me\n"), 0644))

	err := Init(InitParams{Dir: dir, Out: &bytes.Buffer{}})

	var exists *derrors.AlreadyExistsError
	require.True(t, errors.As(err, &exists))
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "prompt: keep me\n", string(content))
}
