package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sitefinity/sfdesigner/internal/config"
	"github.com/sitefinity/sfdesigner/internal/designer"
	serrors "github.com/sitefinity/sfdesigner/internal/errors"
	"github.com/sitefinity/sfdesigner/internal/output"
	"github.com/sitefinity/sfdesigner/internal/vfs"
	"github.com/sitefinity/sfdesigner/internal/widgets"
)

// Site bundles the host services of one site directory.
type Site struct {
	// Root is the site directory on disk.
	Root string

	// Files is the site directory as a writable file system rooted at Root.
	Files afero.Fs

	// Resolved holds the resolved site settings.
	Resolved *config.ResolvedConfig

	// Dir is the uncached view of the site tree, used for listing.
	Dir *vfs.DirFS

	// FS is the file system handed to the resolver, cached when enabled.
	FS designer.FileSystem

	// Registry holds the built-in and configured widgets.
	Registry *widgets.Registry
}

// OpenSite resolves site settings from flags, environment, and config and
// builds the site's host services.
func OpenSite(cfg *config.Config, flags SiteFlags, viewLocations []string) (*Site, error) {
	resolved := config.ResolveAll(config.ResolveAllOptions{
		SiteRootFlag:      flags.SiteRoot,
		PackageFlag:       flags.Package,
		ViewLocationsFlag: viewLocations,
		Config:            cfg,
	})
	config.LogResolvedValues(resolved.Values())

	root, err := filepath.Abs(config.ExpandTilde(resolved.SiteRoot.Value))
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, serrors.NewNotFoundError(
			fmt.Sprintf("site root %q is not a directory", root),
			root,
			"Pass --site-root or set siteRoot in the config file.")
	}

	registry, err := NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	files := afero.NewBasePathFs(afero.NewOsFs(), root)
	dir := vfs.New(afero.NewIOFS(files))
	site := &Site{
		Root:     root,
		Files:    files,
		Resolved: resolved,
		Dir:      dir,
		FS:       dir,
		Registry: registry,
	}

	if resolved.CacheSize > 0 {
		cached, err := vfs.NewCached(dir, resolved.CacheSize)
		if err != nil {
			return nil, err
		}
		site.FS = cached
	}

	output.Debug("site opened",
		"root", root,
		"package", resolved.Package.Value,
		"cache", resolved.CacheSize,
		"widgets", len(registry.List()))

	return site, nil
}

// NewRegistry builds the widget registry declared in the config.
func NewRegistry(cfg *config.Config) (*widgets.Registry, error) {
	var declared []widgets.Widget
	if cfg != nil {
		declared = make([]widgets.Widget, 0, len(cfg.Widgets))
		for _, w := range cfg.Widgets {
			declared = append(declared, widgets.Widget{
				Name:    w.Name,
				Type:    designer.ControllerType(w.Type),
				Root:    w.Root,
				Title:   w.Title,
				Section: w.Section,
			})
		}
	}
	return widgets.New(declared...)
}

// Resolver returns a designer resolver over the site, logging under the
// widget's name.
func (s *Site) Resolver(widgetName string) *designer.Resolver {
	return designer.New(
		s.FS,
		s.Registry,
		s.Registry,
		config.StaticPackage(s.Resolved.Package.Value),
		designer.WithLogger(output.WidgetLogger(widgetName)),
	)
}

// ViewLocations returns the configured view locations, or the widget's own
// defaults when none are configured.
func (s *Site) ViewLocations(w widgets.Widget) []string {
	if len(s.Resolved.ViewLocations) > 0 {
		return s.Resolved.ViewLocations
	}
	return w.ViewLocations()
}
