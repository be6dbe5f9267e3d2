package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/cmdutil"
	"github.com/sitefinity/sfdesigner/internal/config"
	"github.com/sitefinity/sfdesigner/internal/output"
)

const configHeader = `# sfdesigner configuration
#
# siteRoot       site directory holding Mvc/ and ResourcePackages/
# viewLocations  folders searched for DesignerView.<View>.json sidecars
# package        active resource package
# widgets        widgets beyond the built-in Designer, e.g.
#                  - name: News
#                    root: Frontend-Assembly/Telerik.Sitefinity.Frontend.News/

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new sfdesigner configuration file",
		Long: `Create a new sfdesigner configuration file with default values.

The configuration file is created at ~/.sfdesigner/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmdutil.Fail(runInit(c, cfg, force))
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path := config.ExpandTilde(cfg.ConfigPath)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return cmdtypes.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
			cmdtypes.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
