// Package view provides CLI command implementations for the view command group.
package view

import (
	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
)

// NewViewCmd creates the view command group.
func NewViewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "view",
		Short: "Designer view authoring",
		Long:  `Commands for authoring designer views of a widget.`,
	}

	c.AddCommand(NewViewInitCmd(cfg))

	return c
}
