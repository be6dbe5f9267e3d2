// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/sitefinity/sfdesigner/internal/cmd/config"
	"github.com/sitefinity/sfdesigner/internal/cmd/view"
	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/config"
	"github.com/sitefinity/sfdesigner/internal/output"
	"github.com/sitefinity/sfdesigner/internal/version"
)

// rootFlags holds the global flag values.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the sfdesigner CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "sfdesigner",
		Short: "Sitefinity widget designer resolver",
		Long: `sfdesigner resolves the designer of a Sitefinity MVC widget from a site tree.

It provides commands to:
  - Resolve the visible designer views, default view, and script references
  - List the widgets registered for a site
  - Scaffold new designer views
  - Create and validate the sfdesigner config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Path to config file (env: SFD_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "yaml", "Output format: yaml, json, table")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdtypes.NewExitError(err, cmdtypes.ExitUsage)
	})

	rootCmd.AddCommand(NewResolveCmd(cfg))
	rootCmd.AddCommand(NewWidgetsCmd(cfg))
	rootCmd.AddCommand(view.NewViewCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads .env and the config file, sets up logging, and
// fills the shared GlobalConfig.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.config})
	if err != nil {
		return err
	}

	// A broken config file must not block `config init` or `config vet`, so
	// load errors are reported after logging is set up and defaults are used.
	loaded, loadErr := config.NewLoader().Load(configPath.Value)
	if loadErr != nil {
		loaded = &config.Config{Cache: config.CacheConfig{Size: config.DefaultCacheSize}}
	}

	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", configPath.Value, "error", loadErr)
	}

	info := version.GetInfo()
	output.Debug("sfdesigner started", "version", info.Version, "cue_sdk", info.CUESDKVersion)
	config.LogResolvedValues([]config.ResolvedValue{configPath})

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Output = flags.output
	cfg.Verbose = flags.verbose

	return nil
}
