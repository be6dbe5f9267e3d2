package templates

import "embed"

// TemplateFS holds the template trees. Placeholder directories start with an
// underscore, hence the all: prefix.
//
//go:embed all:view all:scripted
var TemplateFS embed.FS

// Path placeholders replaced in template file paths.
const (
	placeholderWidget = "__Widget__"
	placeholderView   = "__View__"
	placeholderScript = "__Script__"
)
