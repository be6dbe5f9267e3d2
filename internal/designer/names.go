package designer

import (
	"strings"

	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// IsDesignerView reports whether the file name follows the designer view
// convention. The prefix match is ordinal and case-sensitive.
func IsDesignerView(filename string) bool {
	return strings.HasPrefix(filename, DesignerViewPrefix)
}

// ExtractViewName strips the leading prefix segment and the extension from a
// dotted view file name:
//
//	DesignerView.Simple.cshtml  -> Simple
//	DesignerView.Foo.Bar.cshtml -> Foo.Bar
//	DesignerView.Simple         -> Simple
//	NoDots                      -> NoDots
func ExtractViewName(filename string) (string, error) {
	if filename == "" {
		return "", serrors.NewInvalidArgumentError("filename", "filename must not be empty")
	}

	parts := strings.Split(filename, ".")

	switch {
	case len(parts) > 2:
		return strings.Join(parts[1:len(parts)-1], "."), nil
	case len(parts) == 2:
		return parts[1], nil
	default:
		return filename, nil
	}
}

// ViewScriptFileName returns the client script file name for a view,
// for example "designerview-foo-bar.js" for view "Foo.Bar".
func ViewScriptFileName(view string) (string, error) {
	if view == "" {
		return "", serrors.NewInvalidArgumentError("view", "view name must not be empty")
	}

	return ScriptPrefix + strings.ToLower(strings.ReplaceAll(view, ".", "-")) + ".js", nil
}

// ScriptReferencePath returns the widget-relative reference of a script file.
func ScriptReferencePath(widgetName, scriptFileName string) string {
	return ScriptsPath + "/" + widgetName + "/" + scriptFileName
}

// ConfigFileName returns the sidecar config file name for a view.
func ConfigFileName(view string) string {
	return DesignerViewPrefix + view + ConfigExtension
}
