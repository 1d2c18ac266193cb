package vitapack

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir   string
	sfo   string
	eboot string
	icon  string
	out   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir := t.TempDir()
	f := fixture{
		dir:   dir,
		sfo:   filepath.Join(dir, "param.sfo"),
		eboot: filepath.Join(dir, "eboot.bin"),
		icon:  filepath.Join(dir, "icon0.png"),
		out:   filepath.Join(dir, "game.vpk"),
	}
	require.NoError(t, os.WriteFile(f.sfo, []byte("SFO"), 0644))
	require.NoError(t, os.WriteFile(f.eboot, []byte("ELF"), 0644))
	require.NoError(t, os.WriteFile(f.icon, []byte("PNG"), 0644))
	return f
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootPacks(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t,
		"-s", f.sfo,
		"-b", f.eboot,
		"-a", f.icon+"=sce_sys/icon0.png",
		"--format", "text",
		f.out,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"sce_sys/param.sfo", "eboot.bin", "sce_sys/icon0.png"}, testutil.ArchiveNames(t, f.out))
	assert.Contains(t, out, "wrote "+f.out+": 3 entries")
}

func TestRootJSONOutput(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--sfo", f.sfo, "--eboot", f.eboot, "--format", "json", f.out)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, f.out, result["output"])
	assert.Equal(t, float64(2), result["written"])
	assert.Equal(t, "closed", result["state"])
}

func TestRootErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		args     []string
		code     errors.ErrorCode
		exitCode int
	}{
		{
			name:     "no metadata",
			args:     []string{"-b", f.eboot, f.out},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "no executable",
			args:     []string{"-s", f.sfo, f.out},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "metadata does not exist",
			args:     []string{"-s", filepath.Join(f.dir, "missing.sfo"), "-b", f.eboot, f.out},
			code:     errors.ErrMissingInput,
			exitCode: errors.ExitNoInput,
		},
		{
			name:     "metadata is a directory",
			args:     []string{"-s", f.dir, "-b", f.eboot, f.out},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "add token without separator",
			args:     []string{"-s", f.sfo, "-b", f.eboot, "-a", f.icon, f.out},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "add source does not exist",
			args:     []string{"-s", f.sfo, "-b", f.eboot, "-a", filepath.Join(f.dir, "nope") + "=nope", f.out},
			code:     errors.ErrMissingInput,
			exitCode: errors.ExitNoInput,
		},
		{
			name:     "unknown format flag",
			args:     []string{"-s", f.sfo, "-b", f.eboot, "--format", "xml", f.out},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "unknown flag",
			args:     []string{"--frobnicate"},
			code:     errors.ErrInvalidInput,
			exitCode: errors.ExitUsage,
		},
		{
			name:     "missing config file",
			args:     []string{"-c", filepath.Join(f.dir, "none.toml"), "-s", f.sfo, "-b", f.eboot, f.out},
			code:     errors.ErrConfigLoad,
			exitCode: errors.ExitConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.Equal(t, tt.exitCode, errors.ExitCode(err))

			_, statErr := os.Stat(f.out)
			assert.True(t, os.IsNotExist(statErr), "no output may be created")
		})
	}
}

func TestRootUnknownFormatInConfigFile(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(f.dir, "pack.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[ui]\nformat = 'xml'\n"), 0644))

	_, err := execute(t, "-c", cfgPath, "-s", f.sfo, "-b", f.eboot, f.out)
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
	assert.Equal(t, errors.ExitConfig, errors.ExitCode(err))
}

func TestRootJSONFatalErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		args     []string
		code     errors.ErrorCode
		exitCode int
	}{
		{
			name:     "missing_input",
			args:     []string{"-s", filepath.Join(f.dir, "missing.sfo"), "-b", f.eboot, f.out},
			code:     errors.ErrMissingInput,
			exitCode: errors.ExitNoInput,
		},
		{
			name:     "output_create",
			args:     []string{"-s", f.sfo, "-b", f.eboot, filepath.Join(f.dir, "no", "dir", "game.vpk")},
			code:     errors.ErrOutputCreate,
			exitCode: errors.ExitCantCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.IsReported(err))
			assert.Equal(t, tt.exitCode, errors.ExitCode(err))

			var doc map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(out), &doc), out)
			assert.Equal(t, string(tt.code), doc["code"])
			assert.Equal(t, float64(tt.exitCode), doc["exit_code"])
			assert.NotEmpty(t, doc["error"])
			assert.NotEmpty(t, doc["details"])
		})
	}
}

func TestRootTextFatalErrorIsReported(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--format", "text", "-s", filepath.Join(f.dir, "missing.sfo"), "-b", f.eboot, f.out)
	require.Error(t, err)
	assert.True(t, errors.IsReported(err))
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "missing.sfo")

	// errors raised before the output format is known are left to the driver
	_, err = execute(t, "--frobnicate")
	require.Error(t, err)
	assert.False(t, errors.IsReported(err))
}

func TestRootOutputCreateFailure(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.dir, "no", "such", "dir", "game.vpk")

	_, err := execute(t, "-s", f.sfo, "-b", f.eboot, out)
	require.Error(t, err)
	assert.Equal(t, errors.ExitCantCreate, errors.ExitCode(err))
}

func TestRootConfigFile(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(f.dir, "pack.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"sfo = '"+f.sfo+"'\n"+
			"eboot = '"+f.eboot+"'\n"+
			"output = '"+f.out+"'\n"+
			"add = ['"+f.icon+"=icon0.png']\n"+
			"[ui]\nformat = 'text'\n"), 0644))

	_, err := execute(t, "-c", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"sce_sys/param.sfo", "eboot.bin", "icon0.png"}, testutil.ArchiveNames(t, f.out))

	// flags replace the configured add list rather than appending to it
	other := filepath.Join(f.dir, "other.vpk")
	_, err = execute(t, "-c", cfgPath, "-a", f.icon+"=sce_sys/icon0.png", other)
	require.NoError(t, err)
	assert.Equal(t, []string{"sce_sys/param.sfo", "eboot.bin", "sce_sys/icon0.png"}, testutil.ArchiveNames(t, other))
}

func TestRootDirectoryFlags(t *testing.T) {
	f := newFixture(t)
	assets := filepath.Join(f.dir, "assets")
	require.NoError(t, os.MkdirAll(assets, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "a.txt"), []byte("a"), 0644))

	_, err := execute(t, "-s", f.sfo, "-b", f.eboot, "-a", assets+"=data", "--directory-entries=false", "--format", "text", f.out)
	require.NoError(t, err)
	assert.Equal(t, []string{"sce_sys/param.sfo", "eboot.bin", "data/a.txt"}, testutil.ArchiveNames(t, f.out))

	other := filepath.Join(f.dir, "flat.vpk")
	out, err := execute(t, "-s", f.sfo, "-b", f.eboot, "-a", assets+"=data", "--expand-directories=false", "--format", "text", other)
	require.NoError(t, err, "entry failures are not fatal")
	assert.Equal(t, []string{"sce_sys/param.sfo", "eboot.bin"}, testutil.ArchiveNames(t, other))
	assert.Contains(t, out, "FAILED data/")
}

func TestFlagOverrides(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-s", "a.sfo", "--format", "json"}))

	overrides := flagOverrides(cmd, []string{"x.vpk"}, packFlags{sfo: "a.sfo", format: "json"})
	assert.Equal(t, map[string]interface{}{
		"sfo":       "a.sfo",
		"ui.format": "json",
		"output":    "x.vpk",
	}, overrides)
}

func TestGenConfigCmd(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "# output = \"output.vpk\"")
	assert.Contains(t, out, "[archive]")
}

func TestConfigCmd(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(f.dir, "pack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: from-yaml.vpk\n"), 0644))

	out, err := execute(t, "config", "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "from-yaml.vpk")
	assert.Contains(t, out, "[archive]")
}

func TestCompletionCmd(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "vita-pack-vpk")
		})
	}

	_, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "vita-pack-vpk version dev")
	assert.Contains(t, out, "commit: unknown")
}
