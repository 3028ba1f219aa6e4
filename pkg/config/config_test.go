package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitie.yml"), []byte("product: Acme\n"), 0o644))

	path, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".gitie.yml"), path)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitie.yaml")
	content := `product: Acme
output: out/.gitignore
defaults: [go, macos]
catalog: templates.yaml
color: false
serve:
  addr: 127.0.0.1:9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Product)
	assert.Equal(t, filepath.Join(dir, "out/.gitignore"), cfg.Output)
	assert.Equal(t, []string{"go", "macos"}, cfg.Defaults)
	assert.Equal(t, filepath.Join(dir, "templates.yaml"), cfg.Catalog)
	assert.False(t, cfg.ColorEnabled(true))
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitie.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [node]\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Gitie", cfg.Product)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.True(t, cfg.ColorEnabled(true))
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitie.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: {oops"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GITIE_PRODUCT":  "Env",
		"GITIE_OUTPUT":   ".gitignore",
		"GITIE_DEFAULTS": "go, rust,,",
		"NO_COLOR":       "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	applyEnv(cfg, lookup)

	assert.Equal(t, "Env", cfg.Product)
	assert.Equal(t, ".gitignore", cfg.Output)
	assert.Equal(t, []string{"go", "rust"}, cfg.Defaults)
	assert.False(t, cfg.ColorEnabled(true))
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestErrNotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	// A config file may exist above the temp dir on a developer machine.
	if err != nil {
		assert.True(t, errors.Is(err, ErrNotFound))
	}
}
