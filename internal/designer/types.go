// Package designer resolves the designer views, default view, and client script
// references for a widget's configuration UI.
//
// Resolution is a single synchronous pass performed by Resolver.Resolve. The
// resulting Model is immutable. Host services (file probing, controller lookup,
// virtual path construction, active package) are injected as interfaces so the
// resolver holds no process-wide state.
package designer

import "io"

// Naming conventions shared by views, sidecar configs, and scripts.
const (
	// DesignerViewPrefix marks a view file as a designer view.
	DesignerViewPrefix = "DesignerView."

	// ScriptPrefix starts every designer view script file name.
	ScriptPrefix = "designerview-"

	// ScriptsPath is the widget-relative folder holding designer scripts.
	ScriptsPath = "Mvc/Scripts"

	// ConfigExtension is the extension of a view's sidecar config.
	ConfigExtension = ".json"
)

// ControllerType identifies a widget controller independently of its public name.
type ControllerType string

// DesignerControllerType is the controller that owns the shared designer scripts
// used when a widget ships no script of its own for a view.
const DesignerControllerType ControllerType = "Telerik.Sitefinity.Frontend.Mvc.Controllers.DesignerController"

// FileSystem probes and reads files by virtual path.
type FileSystem interface {
	// Exists reports whether a file is present at the virtual path.
	Exists(path string) bool

	// Open opens the file at the virtual path for reading.
	Open(path string) (io.ReadCloser, error)
}

// ControllerResolver maps widget names to controller types and back.
type ControllerResolver interface {
	// ResolveControllerType returns the controller type registered for a widget name.
	ResolveControllerType(widgetName string) (ControllerType, error)

	// ControllerName returns the registered widget name for a controller type,
	// or an empty string when the type is unknown.
	ControllerName(t ControllerType) string
}

// PathBuilder builds virtual paths for controllers.
type PathBuilder interface {
	// VirtualPath returns the virtual root of the controller, ending in "/".
	VirtualPath(t ControllerType) string

	// AddParams parameterizes a virtual path with a package tag.
	AddParams(path, packageTag string) string
}

// PackageProvider exposes the currently active package tag.
type PackageProvider interface {
	// CurrentPackage returns the active package tag, or "" when none is active.
	CurrentPackage() string
}

// ViewConfig is the optional JSON sidecar stored next to a designer view as
// DesignerView.<ViewName>.json. Keys are matched case-insensitively.
type ViewConfig struct {
	// Hidden removes the view from the designer unless it was preselected.
	Hidden bool `json:"Hidden" yaml:"hidden"`

	// Priority ranks views when choosing the default; highest wins.
	Priority int `json:"Priority" yaml:"priority"`

	// Scripts lists extra script references the view needs.
	Scripts []string `json:"Scripts,omitempty" yaml:"scripts,omitempty"`
}

// Options is the per-request input to Resolve.
type Options struct {
	// Views are the raw view file names available to the widget.
	Views []string

	// ViewLocations are the ordered directories searched for sidecar configs.
	ViewLocations []string

	// WidgetName is the widget whose designer is being built.
	WidgetName string

	// PreselectedView, when set, is the only view of the designer.
	PreselectedView string
}
