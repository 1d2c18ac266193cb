// Package commands provides the high-level operations behind the command
// line. Each operation lives in its own subdirectory:
//   - pack/      - Pack builds a worklist and writes the VPK
//   - genconfig/ - GenConfig outputs or writes a starter config file
//
// This file re-exports them so callers need a single import.
package commands

import (
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/commands/genconfig"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/commands/pack"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
)

// PackOptions configures a packaging run
type PackOptions = pack.PackOptions

// Pack writes sce_sys/param.sfo, eboot.bin and the extra entries to a VPK.
func Pack(opts PackOptions) (*types.PackResult, error) {
	return pack.Pack(opts)
}

// GenConfigOptions configures GenConfig
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfig outputs or writes the starter configuration file.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
