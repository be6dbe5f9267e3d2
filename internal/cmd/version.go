package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for the sfdesigner CLI.

Shows the CLI version, build information, and the CUE SDK used for config validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}
