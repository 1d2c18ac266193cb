package pack

import (
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/vpk"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/worklist"
)

// PackOptions holds options for the pack command
type PackOptions struct {
	// SFO is the metadata file written as sce_sys/param.sfo
	SFO string

	// Eboot is the executable written as eboot.bin
	Eboot string

	// Add holds src=dst tokens, written in order after the two mandatory entries
	Add []string

	// Output is the VPK path. Defaults to output.vpk.
	Output string

	// Assembler controls how entries are read and written
	Assembler vpk.Options
}

// Pack resolves every source before touching the output, so a missing input
// never leaves a partial VPK behind.
func Pack(opts PackOptions) (*types.PackResult, error) {
	logger := logging.GetLogger("commands.pack")
	done := logging.LogOperationStart(logger, "pack")
	defer done()

	output := opts.Output
	if output == "" {
		output = types.DefaultOutputFile
	}

	list, err := worklist.NewBuilder(opts.Assembler.FS).Build(opts.SFO, opts.Eboot, opts.Add)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("output", output).
		Int("entries", len(list)).
		Msg("Packing")

	return vpk.NewAssembler(opts.Assembler).Assemble(list, output)
}
