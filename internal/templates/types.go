// Package templates scaffolds designer views for a widget from embedded
// templates.
package templates

import "github.com/spf13/afero"

// Template describes one scaffold.
type Template struct {
	// Name is the template identifier (view, scripted).
	Name string

	// Description explains what the template generates.
	Description string

	// Default indicates the template used when --template is omitted.
	Default bool
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// Widget is the widget name (e.g. "News").
	Widget string

	// View is the designer view name (e.g. "Simple" or "Advanced.Paging").
	View string

	// ViewID is the view name lowercased with dots turned into hyphens, for
	// use in HTML ids.
	ViewID string

	// Title is the label of the generated form field.
	Title string

	// Controller is the client-side controller registered by the view script.
	Controller string

	// ScriptFile is the conventional script file name of the view.
	ScriptFile string

	// Hidden, Priority, and Scripts seed the view's sidecar config.
	Hidden   bool
	Priority int
	Scripts  []string
}

// GenerateOptions configures view generation.
type GenerateOptions struct {
	// FS receives the generated files. Nil writes to the OS file system.
	FS afero.Fs

	// TargetDir is the widget's root directory within FS.
	TargetDir string

	// TemplateName is the template to use. Empty selects the default.
	TemplateName string

	Widget   string
	View     string
	Title    string
	Hidden   bool
	Priority int
	Scripts  []string

	// Force allows overwriting existing files.
	Force bool
}

// GenerateResult contains the result of view generation.
type GenerateResult struct {
	// Files maps the created files, relative to TargetDir, to a short
	// description of each.
	Files map[string]string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where files were created.
	TargetDir string
}
