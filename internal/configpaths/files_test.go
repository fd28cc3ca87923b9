package configpaths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsync/internal/configpaths"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		name string
		path string
		pick func(c configpaths.Candidates) []string
	}{
		{name: "json", path: "/tmp/a.json", pick: func(c configpaths.Candidates) []string { return c.JSON }},
		{name: "yaml", path: "/tmp/a.yaml", pick: func(c configpaths.Candidates) []string { return c.YAML }},
		{name: "yml", path: "/tmp/a.yml", pick: func(c configpaths.Candidates) []string { return c.YAML }},
		{name: "toml", path: "/tmp/a.toml", pick: func(c configpaths.Candidates) []string { return c.TOML }},
		{name: "no extension", path: "/tmp/a", pick: func(c configpaths.Candidates) []string { return c.JSON }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := tt.pick(configpaths.ConfigCandidatePaths(tt.path))
			require.NotEmpty(t, paths)
			assert.Equal(t, tt.path, paths[0])
		})
	}
}

func TestConfigCandidatePathsUsesConfigHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config home comes from AppData on windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	c := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, c.TOML, filepath.Join(dir, "inputsync", "run.toml"))
	assert.Contains(t, c.YAML, filepath.Join(dir, "inputsync", "config.yml"))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config home comes from AppData on windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := configpaths.DefaultNamedConfigPath("run", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inputsync", "run.yaml"), p)
	assert.Equal(t, "json", configpaths.Ext("ini"))
}
