package genconfig

import (
	"os"
	"path/filepath"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/config"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
)

// ConfigFileName is the file written by GenConfig in write mode
const ConfigFileName = "vita-pack-vpk.toml"

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Dir receives the config file in write mode. Defaults to the working directory.
	Dir   string
	Write bool
}

// GenConfig returns the starter configuration and, in write mode, writes it
// to Dir unless a config file is already there
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	targetPath := filepath.Join(dir, ConfigFileName)

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrOutputCreate, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)

	return result, nil
}
