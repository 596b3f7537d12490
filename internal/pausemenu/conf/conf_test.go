package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/pausemenu/internal/errors"
	"github.com/sjzar/pausemenu/internal/inventory"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	c, _, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, c.ConfigDir)
	assert.Equal(t, inventory.DefaultLaunchers(), c.Launchers)
	assert.False(t, c.HideChildren)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "config must not be written back")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	data := `{"launchers": ["bash", " zsh "], "hide_children": true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pausemenu.json"), []byte(data), 0o644))

	c, _, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "zsh"}, c.Launchers)
	assert.True(t, c.HideChildren)
}

func TestLoadOverrides(t *testing.T) {
	c, _, err := Load(t.TempDir(), map[string]any{"hide_children": true})
	require.NoError(t, err)
	assert.True(t, c.HideChildren)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PAUSEMENU_LAUNCHERS", `["fish"]`)

	c, _, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fish"}, c.Launchers)
}

func TestValidate(t *testing.T) {
	c := &Config{Launchers: []string{"ok", "  "}}
	assert.True(t, errors.Is(c.Validate(), errors.ErrTypeConfig))
}
