package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TADA_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[counter]
seed = 1

[todo]
empty = "Nothing to do."
char_limit = 40

[ui]
theme = "neon"
`)
	t.Setenv("TADA_TODO_EMPTY", "Inbox zero")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Counter.Seed)
	assert.Equal(t, 40, cfg.Todo.CharLimit)
	assert.Equal(t, "neon", cfg.UI.Theme)
	assert.Equal(t, "Inbox zero", cfg.Todo.Empty)
	assert.Equal(t, "추가", cfg.Todo.AddLabel)
}

func TestLoadFlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_UI_THEME", "neon")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("theme", "classic", "")
	fs.Int("seed", 0, "")
	require.NoError(t, fs.Parse([]string{"--theme=mono", "--seed=5"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, 5, cfg.Counter.Seed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
[ui]
theme = "sepia"

[log]
level = "loud"

[todo]
char_limit = 0
`)
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "todo.char_limit")
}
