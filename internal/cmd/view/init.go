package view

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitefinity/sfdesigner/internal/cmdtypes"
	"github.com/sitefinity/sfdesigner/internal/cmdutil"
	"github.com/sitefinity/sfdesigner/internal/output"
	"github.com/sitefinity/sfdesigner/internal/templates"
)

type initFlags struct {
	site     cmdutil.SiteFlags
	template string
	title    string
	hidden   bool
	priority int
	scripts  []string
	force    bool
}

// NewViewInitCmd creates the view init command.
func NewViewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags initFlags

	c := &cobra.Command{
		Use:   "init <widget> <view>",
		Short: "Scaffold a designer view for a widget",
		Long: fmt.Sprintf(`Scaffold a designer view for a registered widget.

The view markup and its DesignerView.<View>.json sidecar are written under the
widget's root in the site, together with the view's client script unless the
"view" template is chosen.

Templates: %s (default: %s)

Examples:
  # Add an Advanced view to News with a higher priority than the others
  sfdesigner view init News Advanced --priority 10

  # Add a hidden view without a client script
  sfdesigner view init News Internal --hidden --template view`,
			strings.Join(templates.Names(), ", "), templates.DefaultTemplateName),
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return cmdutil.Fail(runInit(c, cfg, args[0], args[1], flags))
		},
	}

	flags.site.AddTo(c)
	c.Flags().StringVarP(&flags.template, "template", "t", templates.DefaultTemplateName, "Template to use")
	c.Flags().StringVar(&flags.title, "title", "", "Label of the generated form field")
	c.Flags().BoolVar(&flags.hidden, "hidden", false, "Hide the view unless it is preselected")
	c.Flags().IntVar(&flags.priority, "priority", 0, "Priority used to pick the default view")
	c.Flags().StringArrayVar(&flags.scripts, "script", nil, "Extra script reference for the view (can be repeated)")
	c.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, widgetName, viewName string, flags initFlags) error {
	site, err := cmdutil.OpenSite(cfg.Config, flags.site, nil)
	if err != nil {
		return err
	}

	w, err := site.Registry.Lookup(widgetName)
	if err != nil {
		return err
	}

	result, err := templates.NewGenerator(templates.GenerateOptions{
		FS:           site.Files,
		TargetDir:    filepath.FromSlash(w.Root),
		TemplateName: flags.template,
		Widget:       w.Name,
		View:         viewName,
		Title:        flags.title,
		Hidden:       flags.hidden,
		Priority:     flags.priority,
		Scripts:      flags.scripts,
		Force:        flags.force,
	}).Generate()
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprint(out, output.RenderFileTree(filepath.ToSlash(filepath.Join(site.Root, w.Root)), result.Files))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Designer view %s created for %s", viewName, w.Name)))
	return nil
}
