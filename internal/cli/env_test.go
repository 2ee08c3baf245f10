package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipseed/pipseed/internal/config"
	"github.com/pipseed/pipseed/internal/logger"
)

// testEnv returns an environment with built-in defaults rooted in a temp dir.
func testEnv(t *testing.T) *Env {
	t.Helper()
	cfg, err := config.New().Load()
	require.NoError(t, err)
	return &Env{Config: cfg, Logger: logger.Discard(), Dir: t.TempDir()}
}

func TestBootstrap_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	var logs bytes.Buffer
	env, err := Bootstrap(BootstrapParams{Dir: dir, LogOutput: &logs})
	require.NoError(t, err)

	assert.Empty(t, logs.String(), "nothing is logged at the default level")
	assert.Equal(t, dir, env.Dir)
	assert.Equal(t, 10, env.Config.Generate.Count)
	assert.Empty(t, env.Config.Sources)
	assert.False(t, env.Logger.Enabled("info"))
}

func TestBootstrap_LocalConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, ".pipseed.yml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  count: 3\nlog:\n  level: debug\n"), 0644))

	var logs bytes.Buffer
	env, err := Bootstrap(BootstrapParams{Dir: dir, LogOutput: &logs})
	require.NoError(t, err)

	assert.Equal(t, 3, env.Config.Generate.Count)
	assert.Equal(t, []string{path}, env.Config.Sources)
	assert.True(t, env.Logger.Enabled("debug"))
	assert.Contains(t, logs.String(), "Configuration loaded")
}

func TestBootstrap_LogLevelOverridesConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pipseed.yml"), []byte("log:\n  level: debug\n"), 0644))

	env, err := Bootstrap(BootstrapParams{Dir: dir, LogLevel: "error", LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.False(t, env.Logger.Enabled("warn"))
	assert.True(t, env.Logger.Enabled("error"))
}

func TestBootstrap_ExplicitConfigMissing(t *testing.T) {
	_, err := Bootstrap(BootstrapParams{
		Dir:        t.TempDir(),
		ConfigPath: filepath.Join(t.TempDir(), "nope.yml"),
		LogOutput:  &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
