// Package cmdutil provides shared command utilities. It centralizes flag
// groups, site construction, and error reporting for the subcommands.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// SiteFlags holds flags common to commands that read a site tree
// (resolve, widgets, view init).
type SiteFlags struct {
	SiteRoot string
	Package  string
}

// AddTo registers the site flags on the given cobra command.
func (f *SiteFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.SiteRoot, "site-root", "",
		"Site root directory (env: SFD_SITE_ROOT)")
	cmd.Flags().StringVar(&f.Package, "package", "",
		"Active resource package (env: SFD_PACKAGE)")
}

// ViewFlags holds flags selecting the designer views to resolve.
type ViewFlags struct {
	Views         []string
	ViewLocations []string
	Preselected   string
}

// AddTo registers the view flags on the given cobra command.
func (f *ViewFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.Views, "view", nil,
		"Candidate view file name (can be repeated; default: discovered from the site)")
	cmd.Flags().StringArrayVar(&f.ViewLocations, "view-location", nil,
		"Virtual folder searched for view configs (can be repeated; default: from config or widget)")
	cmd.Flags().StringVar(&f.Preselected, "preselected", "",
		"Resolve only this view, even if it is hidden")
}
