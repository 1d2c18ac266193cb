package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	packerrors "github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "VPK_"

// DefaultConfigFiles are looked up in the working directory, first match wins
var DefaultConfigFiles = []string{"vita-pack-vpk.toml", "vita-pack-vpk.yaml", "vita-pack-vpk.yml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the embedded defaults file
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the sources layered over the embedded defaults
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist
	ConfigFile string

	// WorkDir is searched for DefaultConfigFiles when ConfigFile is empty
	WorkDir string

	// Overrides holds values of flags set on the command line, keyed by
	// config path (e.g. "archive.expand_directories")
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config.Load")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, packerrors.Wrap(err, packerrors.ErrInternal, "failed to load defaults")
	}

	// 2. Config file
	configPath, err := resolveConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return nil, packerrors.Wrapf(err, packerrors.ErrConfigParse, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, packerrors.Wrap(err, packerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command-line flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, packerrors.Wrap(err, packerrors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, packerrors.Wrap(err, packerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps VPK_ARCHIVE_EXPAND_DIRECTORIES to archive.expand_directories.
// Only the first underscore separates section from key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", packerrors.Wrapf(err, packerrors.ErrConfigLoad, "config file not found: %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range DefaultConfigFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func validate(cfg *Config) error {
	if _, err := ui.ParseFormat(cfg.UI.Format); err != nil {
		return packerrors.Wrapf(err, packerrors.ErrConfigParse, "invalid ui.format %q", cfg.UI.Format).
			WithDetail("format", cfg.UI.Format)
	}
	return nil
}
