package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "scripted"

var templates = map[string]Template{
	"view": {
		Name:        "view",
		Description: "Designer view markup and sidecar config",
	},
	"scripted": {
		Name:        "scripted",
		Description: "Designer view markup, sidecar config, and client script",
		Default:     true,
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{templates["view"], templates["scripted"]}
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// Names returns all template names.
func Names() []string {
	return []string{"view", "scripted"}
}
