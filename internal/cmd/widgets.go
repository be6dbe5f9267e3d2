package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/cmdutil"
	"github.com/sitefinity/sfdesigner/internal/output"
)

// NewWidgetsCmd creates the widgets command.
func NewWidgetsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "widgets",
		Short: "List registered widgets",
		Long: `List the widgets known to sfdesigner: the built-in Designer widget and the
widgets declared under "widgets" in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmdutil.Fail(runWidgets(c, cfg))
		},
	}
}

func runWidgets(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	format, err := cmdutil.ParseOutputFormat(cfg.Output)
	if err != nil {
		return err
	}

	registry, err := cmdutil.NewRegistry(cfg.Config)
	if err != nil {
		return err
	}

	list := registry.List()
	rows := make([]output.WidgetRow, 0, len(list))
	for _, w := range list {
		rows = append(rows, output.WidgetRow{
			Name:    w.Name,
			Type:    string(w.Type),
			Root:    w.Root,
			Title:   w.Title,
			Section: w.Section,
		})
	}

	return output.WriteWidgets(c.OutOrStdout(), rows, format)
}
