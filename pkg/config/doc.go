// Package config handles configuration management for vita-pack-vpk.
// It layers embedded defaults, an optional TOML or YAML config file,
// VPK_* environment variables and explicitly set command-line flags,
// later sources overriding earlier ones.
package config
