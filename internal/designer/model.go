package designer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// Model is the resolved designer of a widget. It is read-only once built.
type Model struct {
	views            []string
	scriptReferences []string
	defaultView      string
}

// Views returns the designer views in discovery order.
func (m *Model) Views() []string {
	return append([]string(nil), m.views...)
}

// ScriptReferences returns the distinct script references in discovery order.
func (m *Model) ScriptReferences() []string {
	return append([]string(nil), m.scriptReferences...)
}

// DefaultView returns the highest-priority configured view, or "" when no
// view has a sidecar config.
func (m *Model) DefaultView() string {
	return m.defaultView
}

// Resolver builds designer models against a set of host services.
// A Resolver holds no per-request state and may be shared when its
// collaborators are safe for concurrent reads.
type Resolver struct {
	fs          FileSystem
	controllers ControllerResolver
	paths       PathBuilder
	packages    PackageProvider
	logger      *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug tracing of probes.
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver.
func New(fs FileSystem, controllers ControllerResolver, paths PathBuilder, packages PackageProvider, opts ...Option) *Resolver {
	r := &Resolver{
		fs:          fs,
		controllers: controllers,
		paths:       paths,
		packages:    packages,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// viewEntry pairs a view with its sidecar config, loaded once.
type viewEntry struct {
	name   string
	config *ViewConfig
}

// Resolve runs view discovery, config loading, hidden filtering, script
// reference computation, and default view selection for one widget.
// Either a complete Model or an error is returned.
func (r *Resolver) Resolve(opts Options) (*Model, error) {
	if opts.WidgetName == "" {
		return nil, serrors.NewInvalidArgumentError("widgetName", "widget name must not be empty")
	}

	preselected := opts.PreselectedView != ""

	names, err := discoverViews(opts)
	if err != nil {
		return nil, err
	}

	entries := make([]viewEntry, 0, len(names))
	for _, name := range names {
		cfg, err := LoadViewConfig(r.fs, name, opts.ViewLocations)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("view discovered", "view", name, "config", cfg != nil)
		entries = append(entries, viewEntry{name: name, config: cfg})
	}

	if !preselected {
		entries = dropHidden(entries)
	}

	views := make([]string, len(entries))
	for i, e := range entries {
		views[i] = e.name
	}

	scripts, err := r.scriptReferences(opts.WidgetName, entries)
	if err != nil {
		return nil, err
	}

	return &Model{
		views:            views,
		scriptReferences: scripts,
		defaultView:      defaultView(entries),
	}, nil
}

// discoverViews returns the preselected view alone, or the names of all
// designer views among the candidates.
func discoverViews(opts Options) ([]string, error) {
	if opts.PreselectedView != "" {
		return []string{opts.PreselectedView}, nil
	}

	names := make([]string, 0, len(opts.Views))
	for _, filename := range opts.Views {
		if !IsDesignerView(filename) {
			continue
		}
		name, err := ExtractViewName(filename)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func dropHidden(entries []viewEntry) []viewEntry {
	visible := entries[:0:0]
	for _, e := range entries {
		if e.config != nil && e.config.Hidden {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// scriptReferences computes one script per view, preferring the widget's own
// script over the shared designer script, then appends the scripts declared
// by view configs. Duplicates are dropped, keeping the first occurrence.
func (r *Resolver) scriptReferences(widgetName string, entries []viewEntry) ([]string, error) {
	if len(entries) == 0 {
		return []string{}, nil
	}

	packageTag := r.packages.CurrentPackage()

	widgetType, err := r.controllers.ResolveControllerType(widgetName)
	if err != nil {
		return nil, fmt.Errorf("resolving controller for widget %q: %w", widgetName, err)
	}

	designerName := r.controllers.ControllerName(DesignerControllerType)
	var designerType ControllerType
	if designerName != "" {
		designerType, err = r.controllers.ResolveControllerType(designerName)
		if err != nil {
			return nil, fmt.Errorf("resolving designer controller %q: %w", designerName, err)
		}
	}

	refs := newOrderedSet(len(entries))
	for _, e := range entries {
		scriptFile, err := ViewScriptFileName(e.name)
		if err != nil {
			return nil, err
		}

		if r.scriptExists(widgetType, widgetName, scriptFile, packageTag) {
			refs.add(ScriptReferencePath(widgetName, scriptFile))
			continue
		}
		if designerName != "" && r.scriptExists(designerType, designerName, scriptFile, packageTag) {
			refs.add(ScriptReferencePath(designerName, scriptFile))
			continue
		}
		r.logger.Debug("no script for view", "view", e.name, "script", scriptFile)
	}

	for _, e := range entries {
		if e.config == nil {
			continue
		}
		for _, script := range e.config.Scripts {
			refs.add(script)
		}
	}

	return refs.items, nil
}

// scriptExists probes the script under the controller's virtual root,
// parameterized with the package tag when one is active.
func (r *Resolver) scriptExists(t ControllerType, widgetName, scriptFile, packageTag string) bool {
	path := "~/" + r.paths.VirtualPath(t) + ScriptReferencePath(widgetName, scriptFile)
	if packageTag != "" {
		path = r.paths.AddParams(path, packageTag)
	}

	found := r.fs.Exists(path)
	r.logger.Debug("script probe", "path", path, "found", found)
	return found
}

// defaultView picks the configured view with the highest priority. The first
// view wins a tie.
func defaultView(entries []viewEntry) string {
	var (
		best  string
		top   int
		found bool
	)
	for _, e := range entries {
		if e.config == nil {
			continue
		}
		if !found || e.config.Priority > top {
			best, top, found = e.name, e.config.Priority, true
		}
	}
	return best
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		seen:  make(map[string]struct{}, capacity),
		items: make([]string, 0, capacity),
	}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}
