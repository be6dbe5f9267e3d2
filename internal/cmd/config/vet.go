package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/cmdutil"
	"github.com/sitefinity/sfdesigner/internal/config"
	"github.com/sitefinity/sfdesigner/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate the sfdesigner configuration file",
		Long: `Validate the sfdesigner configuration file against the internal schema.

The command validates the configuration file at ~/.sfdesigner/config.yaml by
default. Pass a path or use the --config flag to validate another file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := cfg.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			return runVet(c, config.ExpandTilde(path))
		},
	}
}

func runVet(c *cobra.Command, path string) error {
	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("checking config file: %w", err))
	}
	if !exists {
		return cmdutil.Fail(cmdtypes.NewExitError(
			fmt.Errorf("config file not found: %s", path),
			cmdtypes.ExitNotFound,
		))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.Fail(fmt.Errorf("creating validator: %w", err))
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			cmdutil.PrintValidationError("config validation failed: "+path, err)
			return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err, Printed: true}
		}
		return cmdutil.Fail(fmt.Errorf("validating config: %w", err))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
