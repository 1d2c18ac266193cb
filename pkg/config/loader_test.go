package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/config"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "output.vpk", cfg.Output)
	assert.Empty(t, cfg.SFO)
	assert.Empty(t, cfg.Eboot)
	assert.Empty(t, cfg.Add)
	assert.True(t, cfg.Archive.ExpandDirectories)
	assert.True(t, cfg.Archive.DirectoryEntries)
	assert.Equal(t, "auto", cfg.UI.Format)
}

func TestLoadTOMLFromWorkDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vita-pack-vpk.toml", `
output = "game.vpk"
sfo = "build/param.sfo"
add = ["icon0.png=sce_sys/icon0.png", "assets=data"]

[archive]
directory_entries = false
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "game.vpk", cfg.Output)
	assert.Equal(t, "build/param.sfo", cfg.SFO)
	assert.Equal(t, []string{"icon0.png=sce_sys/icon0.png", "assets=data"}, cfg.Add)
	assert.True(t, cfg.Archive.ExpandDirectories)
	assert.False(t, cfg.Archive.DirectoryEntries)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pack.yaml", `
eboot: out/eboot.bin
ui:
  format: json
`)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "out/eboot.bin", cfg.Eboot)
	assert.Equal(t, "json", cfg.UI.Format)
	assert.Equal(t, "output.vpk", cfg.Output)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.toml", "output = \n[[[")

	_, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("VPK_OUTPUT", "env.vpk")
	t.Setenv("VPK_ARCHIVE_EXPAND_DIRECTORIES", "false")
	t.Setenv("VPK_ADD", "a.txt=a.txt,b.txt=docs/b.txt")

	cfg, err := config.Load(config.LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "env.vpk", cfg.Output)
	assert.False(t, cfg.Archive.ExpandDirectories)
	assert.Equal(t, []string{"a.txt=a.txt", "b.txt=docs/b.txt"}, cfg.Add)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vita-pack-vpk.toml", `output = "file.vpk"
sfo = "file.sfo"
eboot = "file.bin"
`)
	t.Setenv("VPK_OUTPUT", "env.vpk")
	t.Setenv("VPK_SFO", "env.sfo")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:   dir,
		Overrides: map[string]interface{}{"output": "flag.vpk"},
	})
	require.NoError(t, err)

	assert.Equal(t, "flag.vpk", cfg.Output)
	assert.Equal(t, "env.sfo", cfg.SFO)
	assert.Equal(t, "file.bin", cfg.Eboot)
}

func TestLoadOverridesNestedKeys(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{
		WorkDir: t.TempDir(),
		Overrides: map[string]interface{}{
			"archive.directory_entries": false,
			"add":                       []string{"x=y"},
		},
	})
	require.NoError(t, err)

	assert.False(t, cfg.Archive.DirectoryEntries)
	assert.True(t, cfg.Archive.ExpandDirectories)
	assert.Equal(t, []string{"x=y"}, cfg.Add)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := config.Load(config.LoadOptions{
		WorkDir:   t.TempDir(),
		Overrides: map[string]interface{}{"ui.format": "xml"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Contains(t, err.Error(), "xml")
}

func TestAssemblerOptions(t *testing.T) {
	cfg := &config.Config{Archive: config.ArchiveConfig{ExpandDirectories: false, DirectoryEntries: true}}
	opts := cfg.AssemblerOptions()

	assert.False(t, opts.ExpandDirectories)
	assert.True(t, opts.DirectoryEntries)
	assert.NotNil(t, opts.FS)
	assert.NotNil(t, opts.NewWriter)
}
