package templates

import (
	"fmt"
	"strings"
	"unicode"

	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// ValidateWidgetName checks that a widget name can be used as a directory name.
func ValidateWidgetName(name string) error {
	if name == "" {
		return serrors.NewInvalidArgumentError("widget", "widget name cannot be empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return serrors.NewInvalidArgumentError("widget",
				fmt.Sprintf("invalid widget name %q: contains invalid character %q", name, r))
		}
	}
	return nil
}

// ValidateViewName checks that a view name round-trips through the designer
// view file name convention. Dots separate name segments, so empty segments
// are rejected.
func ValidateViewName(name string) error {
	if name == "" {
		return serrors.NewInvalidArgumentError("view", "view name cannot be empty")
	}
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			return serrors.NewInvalidArgumentError("view",
				fmt.Sprintf("invalid view name %q: empty segment", name))
		}
		for _, r := range segment {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
				return serrors.NewInvalidArgumentError("view",
					fmt.Sprintf("invalid view name %q: contains invalid character %q", name, r))
			}
		}
	}
	return nil
}

// controllerName derives a client controller name such as "AdvancedPagingCtrl".
func controllerName(view string) string {
	var sb strings.Builder
	for _, segment := range strings.FieldsFunc(view, func(r rune) bool { return r == '.' || r == '-' }) {
		sb.WriteString(strings.ToUpper(segment[:1]))
		sb.WriteString(segment[1:])
	}
	sb.WriteString("Ctrl")
	return sb.String()
}
