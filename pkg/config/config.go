package config

import (
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/vpk"
)

// Config is the effective configuration of a packaging run
type Config struct {
	Output  string        `koanf:"output" toml:"output"`
	SFO     string        `koanf:"sfo" toml:"sfo"`
	Eboot   string        `koanf:"eboot" toml:"eboot"`
	Add     []string      `koanf:"add" toml:"add"`
	Archive ArchiveConfig `koanf:"archive" toml:"archive"`
	UI      UIConfig      `koanf:"ui" toml:"ui"`
}

// ArchiveConfig controls how directory sources are written. Storage method
// and permission bits are fixed by the package format and not configurable.
type ArchiveConfig struct {
	ExpandDirectories bool `koanf:"expand_directories" toml:"expand_directories"`
	DirectoryEntries  bool `koanf:"directory_entries" toml:"directory_entries"`
}

// UIConfig controls how the run summary is rendered
type UIConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// AssemblerOptions applies the archive settings on top of the default
// assembler options
func (c *Config) AssemblerOptions() vpk.Options {
	opts := vpk.DefaultOptions()
	opts.ExpandDirectories = c.Archive.ExpandDirectories
	opts.DirectoryEntries = c.Archive.DirectoryEntries
	return opts
}
