// Package widgets provides the registry of widget controllers known to a site.
//
// The registry replaces reflection-based controller discovery: every widget is
// declared with its name, controller type, and virtual root. It implements the
// designer.ControllerResolver and designer.PathBuilder contracts.
package widgets

import "github.com/sitefinity/sfdesigner/internal/designer"

// DesignerName is the registered name of the built-in designer widget.
const DesignerName = "Designer"

// DesignerRoot is the virtual root of the assembly shipping the designer.
const DesignerRoot = "Frontend-Assembly/Telerik.Sitefinity.Frontend/"

// Widget describes one widget controller.
type Widget struct {
	// Name is the public widget name (e.g. "News").
	Name string `json:"name" yaml:"name"`

	// Type is the controller type identifier.
	Type designer.ControllerType `json:"type" yaml:"type"`

	// Root is the virtual root of the widget's files, "" for the site root.
	// Non-empty roots end in "/".
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Title is the toolbox title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Section is the toolbox section.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
}

// Designer returns the built-in designer widget.
func Designer() Widget {
	return Widget{
		Name:    DesignerName,
		Type:    designer.DesignerControllerType,
		Root:    DesignerRoot,
		Title:   "Designer",
		Section: "System",
	}
}
