package config

import (
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Dump renders the effective configuration as TOML
func Dump(cfg *Config) (string, error) {
	if cfg == nil {
		return "", errors.New(errors.ErrInternal, "no configuration to dump")
	}
	if cfg.Add == nil {
		// keep "add = []" in the output instead of dropping the key
		c := *cfg
		c.Add = []string{}
		cfg = &c
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(out), nil
}
