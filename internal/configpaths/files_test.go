package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG lookup is unix only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "nxpad"), dir)

	p, err := DefaultNamedConfigPath("replay", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "nxpad", "replay.yaml"), p)
}

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("my/board.toml")
	require.NotEmpty(t, tomlPaths)
	assert.Equal(t, "my/board.toml", tomlPaths[0], "user path comes first")
	assert.Equal(t, 2*len(jsonPaths), len(yamlPaths), "yaml and yml per json candidate")
	assert.Equal(t, len(jsonPaths)+1, len(tomlPaths))

	jsonPaths, _, _ = ConfigCandidatePaths("custom.conf")
	assert.Equal(t, "custom.conf", jsonPaths[0])
}

func TestExt(t *testing.T) {
	assert.Equal(t, "yaml", Ext("yml"))
	assert.Equal(t, "toml", Ext("toml"))
	assert.Equal(t, "json", Ext(""))
}
