package vitapack

import (
	"fmt"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/internal/version"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/commands"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/config"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/filesystem"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/paths"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// packFlags holds the values of the root command's packing flags
type packFlags struct {
	sfo               string
	eboot             string
	add               []string
	format            string
	expandDirectories bool
	directoryEntries  bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		flags      packFlags
	)

	rootCmd := &cobra.Command{
		Use:     "vita-pack-vpk [flags] [output]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd, args, configFile, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.Flags().StringVarP(&flags.sfo, "sfo", "s", "", MsgFlagSFO)
	rootCmd.Flags().StringVarP(&flags.eboot, "eboot", "b", "", MsgFlagEboot)
	rootCmd.Flags().StringArrayVarP(&flags.add, "add", "a", nil, MsgFlagAdd)
	rootCmd.Flags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)
	rootCmd.Flags().BoolVar(&flags.expandDirectories, "expand-directories", true, MsgFlagExpandDirectories)
	rootCmd.Flags().BoolVar(&flags.directoryEntries, "directory-entries", true, MsgFlagDirectoryEntries)

	_ = rootCmd.MarkFlagFilename("sfo", "sfo")
	_ = rootCmd.MarkFlagFilename("eboot", "bin")
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid flags")
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionFormat, version.Commit, version.Date))

	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// flagOverrides maps the flags set on the command line to config keys.
// Flags left at their defaults do not override the config file or env.
func flagOverrides(cmd *cobra.Command, args []string, flags packFlags) map[string]interface{} {
	overrides := make(map[string]interface{})
	changed := cmd.Flags().Changed

	if changed("sfo") {
		overrides["sfo"] = flags.sfo
	}
	if changed("eboot") {
		overrides["eboot"] = flags.eboot
	}
	if changed("add") {
		overrides["add"] = flags.add
	}
	if changed("format") {
		overrides["ui.format"] = flags.format
	}
	if changed("expand-directories") {
		overrides["archive.expand_directories"] = flags.expandDirectories
	}
	if changed("directory-entries") {
		overrides["archive.directory_entries"] = flags.directoryEntries
	}
	if len(args) == 1 {
		overrides["output"] = args[0]
	}

	return overrides
}

// validateInputs checks the command line before any file is created
func validateInputs(cfg *config.Config) error {
	fs := filesystem.NewOS()

	if cfg.SFO == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrSFORequired)
	}
	if err := paths.ValidateInputFile(fs, cfg.SFO); err != nil {
		return err
	}

	if cfg.Eboot == "" {
		return errors.New(errors.ErrInvalidInput, MsgErrEbootRequired)
	}
	if err := paths.ValidateInputFile(fs, cfg.Eboot); err != nil {
		return err
	}

	if err := paths.ValidateAddTokens(cfg.Add); err != nil {
		return err
	}

	return paths.ValidatePath(cfg.Output)
}

// checkFlags rejects malformed flag values before they reach the config
// layers, so they are reported as usage errors rather than config errors
func checkFlags(cmd *cobra.Command, flags packFlags) error {
	if cmd.Flags().Changed("format") {
		if _, err := ui.ParseFormat(flags.format); err != nil {
			return err
		}
	}
	return nil
}

func runPack(cmd *cobra.Command, args []string, configFile string, flags packFlags) error {
	logger := logging.GetLogger("cmd.pack")

	if err := checkFlags(cmd, flags); err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  flagOverrides(cmd, args, flags),
	})
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(cfg.UI.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := pack(cfg)
	if result != nil {
		if rerr := renderer.RenderResult(result); rerr != nil {
			logger.Warn().Err(rerr).Msg("Failed to render result")
		}
		if !result.Complete() {
			logger.Warn().Msgf(MsgPackedWithErrors, result.Failures, len(result.Entries))
		}
	}
	if err == nil {
		return nil
	}

	if rerr := renderer.RenderError(err); rerr != nil {
		logger.Warn().Err(rerr).Msg("Failed to render error")
		return err
	}
	return errors.MarkReported(err)
}

func pack(cfg *config.Config) (*types.PackResult, error) {
	if err := validateInputs(cfg); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cmd.pack")
	logger.Debug().
		Str("sfo", cfg.SFO).
		Str("eboot", cfg.Eboot).
		Strs("add", cfg.Add).
		Str("output", cfg.Output).
		Msg("Starting pack")

	return commands.Pack(commands.PackOptions{
		SFO:       cfg.SFO,
		Eboot:     cfg.Eboot,
		Add:       cfg.Add,
		Output:    cfg.Output,
		Assembler: cfg.AssemblerOptions(),
	})
}
