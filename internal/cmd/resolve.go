package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/cmdutil"
	"github.com/sitefinity/sfdesigner/internal/designer"
	"github.com/sitefinity/sfdesigner/internal/output"
	"github.com/sitefinity/sfdesigner/internal/vfs"
	"github.com/sitefinity/sfdesigner/internal/widgets"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		siteFlags cmdutil.SiteFlags
		viewFlags cmdutil.ViewFlags
	)

	c := &cobra.Command{
		Use:   "resolve <widget>",
		Short: "Resolve the designer of a widget",
		Long: `Resolve the designer of a widget: its visible views, default view, and the
client scripts the designer needs.

Candidate views are read from the widget's view folders unless --view is given.
Each view's DesignerView.<View>.json sidecar is looked up in the view locations;
the first location holding it wins.

Examples:
  # Resolve the News widget of the site in the current directory
  sfdesigner resolve News

  # Resolve a single view for a site elsewhere, as a table
  sfdesigner resolve News --preselected Advanced --site-root ./site -o table

  # Resolve explicit candidates against a resource package
  sfdesigner resolve News --view DesignerView.Simple.cshtml --package Bootstrap`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Fail(runResolve(c, cfg, args[0], siteFlags, viewFlags))
		},
	}

	siteFlags.AddTo(c)
	viewFlags.AddTo(c)

	return c
}

func runResolve(c *cobra.Command, cfg *cmdtypes.GlobalConfig, widgetName string, siteFlags cmdutil.SiteFlags, viewFlags cmdutil.ViewFlags) error {
	format, err := cmdutil.ParseOutputFormat(cfg.Output)
	if err != nil {
		return err
	}

	site, err := cmdutil.OpenSite(cfg.Config, siteFlags, viewFlags.ViewLocations)
	if err != nil {
		return err
	}

	w, err := site.Registry.Lookup(widgetName)
	if err != nil {
		return err
	}
	locations := site.ViewLocations(w)

	candidates := viewFlags.Views
	if len(candidates) == 0 && viewFlags.Preselected == "" {
		candidates, err = widgets.DiscoverViews(site.Dir, locations)
		if err != nil {
			return err
		}
		output.WidgetLogger(w.Name).Debug("views discovered", "count", len(candidates), "locations", locations)
	}

	model, err := site.Resolver(w.Name).Resolve(designer.Options{
		Views:           candidates,
		ViewLocations:   locations,
		WidgetName:      w.Name,
		PreselectedView: viewFlags.Preselected,
	})
	if err != nil {
		return err
	}
	if cached, ok := site.FS.(*vfs.CachedFS); ok {
		output.WidgetLogger(w.Name).Debug("existence cache", "entries", cached.Len())
	}

	return output.WriteDesigner(c.OutOrStdout(), output.DesignerView{
		Widget:           w.Name,
		Package:          site.Resolved.Package.Value,
		Views:            model.Views(),
		DefaultView:      model.DefaultView(),
		ScriptReferences: model.ScriptReferences(),
	}, format)
}
