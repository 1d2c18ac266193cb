package vitapack

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Package a PS Vita homebrew application into a VPK"
	MsgCompletionShort = "Generate shell completion script"
	MsgGenConfigShort  = "Generate a starter configuration file"
	MsgGenConfigLong   = "Output the default configuration with every value commented out, or write it to ./vita-pack-vpk.toml with -w."
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Print the configuration that results from defaults, the config file and VPK_* environment variables, as TOML."

	// Flag descriptions
	MsgFlagVerbose           = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig            = "Config file (default ./vita-pack-vpk.toml or ./vita-pack-vpk.yaml)"
	MsgFlagSFO               = "Metadata file, stored as sce_sys/param.sfo"
	MsgFlagEboot             = "Executable, stored as eboot.bin"
	MsgFlagAdd               = "Extra entry as src=dst, repeatable; written in order"
	MsgFlagFormat            = "Output format: auto, term, text or json"
	MsgFlagExpandDirectories = "Write directory sources recursively"
	MsgFlagDirectoryEntries  = "Write an explicit dst/ entry for each expanded directory"
	MsgFlagWrite             = "Write ./vita-pack-vpk.toml instead of printing"

	// Status messages
	MsgVersionFormat    = "{{.Name}} version {{.Version}}\n  commit: %s\n  built:  %s\n"
	MsgPackedWithErrors = "%d of %d entries could not be written"
	MsgConfigWritten    = "Wrote %s"
	MsgConfigFileExists = "%s already exists, not overwritten"
	MsgUsageHint        = "Run 'vita-pack-vpk --help' for usage."

	// Error messages
	MsgErrSFORequired   = "no metadata file given (use --sfo)"
	MsgErrEbootRequired = "no executable given (use --eboot)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
