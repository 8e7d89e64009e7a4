package fppc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/fppc"
)

func TestFindConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path := filepath.Join(root, "a", ".fppc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("console:\n  prompt: \"fppc> \"\n"), 0o600))

	found, err := fppc.FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err := fppc.LoadConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, "fppc> ", cfg.PromptOrDefault())
}

func TestFindConfigPrefersNearest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	inner := filepath.Join(root, "inner")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".fppc.yaml"), []byte("{}\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(inner, "fppc.yml"), []byte("{}\n"), 0o600))

	found, err := fppc.FindConfig(inner)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(inner, "fppc.yml"), found)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".fppc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`console:
  prompt: "? "
  color: false
check:
  paths:
    - testdata
    - /abs/cases
log:
  level: debug
`), 0o600))

	cfg, err := fppc.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "? ", cfg.PromptOrDefault())
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "debug", cfg.LogLevelOrDefault())
	assert.Equal(t, []string{filepath.Join("/work", "testdata"), "/abs/cases"}, cfg.CheckPaths("/work"))
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := fppc.LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("console: [\n"), 0o600))

	_, err = fppc.LoadConfigFile(bad)
	require.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*fppc.Config{nil, {}} {
		assert.Equal(t, fppc.DefaultPrompt, cfg.PromptOrDefault())
		assert.True(t, cfg.ColorEnabled())
		assert.Equal(t, fppc.DefaultLogLevel, cfg.LogLevelOrDefault())
		assert.Empty(t, cfg.CheckPaths("/work"))
	}
}
