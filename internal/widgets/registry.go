package widgets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/sitefinity/sfdesigner/internal/designer"
	serrors "github.com/sitefinity/sfdesigner/internal/errors"
	"github.com/sitefinity/sfdesigner/internal/vfs"
)

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 3

// Registry maps widget names to widgets. It is read-only after New and safe
// for concurrent use.
type Registry struct {
	byName map[string]Widget
	byType map[designer.ControllerType]string
}

// New creates a registry holding the designer widget and the given widgets.
// Missing types default to SitefinityWebApp.Mvc.Controllers.<Name>Controller.
func New(widgets ...Widget) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Widget, len(widgets)+1),
		byType: make(map[designer.ControllerType]string, len(widgets)+1),
	}

	all := append([]Widget{Designer()}, widgets...)
	for _, w := range all {
		if w.Name == "" {
			return nil, serrors.NewInvalidArgumentError("name", "widget name must not be empty")
		}
		if w.Type == "" {
			w.Type = DefaultType(w.Name)
			if w.Name == DesignerName {
				w.Type = designer.DesignerControllerType
			}
		}
		w.Root = normalizeRoot(w.Root)

		if w.Name == DesignerName && len(r.byName) > 0 {
			// A site may relocate the designer; the later declaration wins.
			delete(r.byType, r.byName[DesignerName].Type)
			delete(r.byType, designer.DesignerControllerType)
		} else if _, dup := r.byName[w.Name]; dup {
			return nil, serrors.NewValidationError(
				fmt.Sprintf("widget %q is declared more than once", w.Name), "", "widgets", "")
		}
		if owner, dup := r.byType[w.Type]; dup {
			return nil, serrors.NewValidationError(
				fmt.Sprintf("controller type %q is used by both %q and %q", w.Type, owner, w.Name), "", "widgets", "")
		}

		r.byName[w.Name] = w
		r.byType[w.Type] = w.Name
		if w.Name == DesignerName {
			// The resolver finds the script fallback through the well-known
			// designer type, whatever type the designer is declared with.
			r.byType[designer.DesignerControllerType] = DesignerName
		}
	}

	return r, nil
}

// DefaultType derives a controller type for a widget declared without one.
func DefaultType(name string) designer.ControllerType {
	return designer.ControllerType("SitefinityWebApp.Mvc.Controllers." + name + "Controller")
}

func normalizeRoot(root string) string {
	root = strings.TrimPrefix(strings.TrimPrefix(root, "~"), "/")
	if root == "" || strings.HasSuffix(root, "/") {
		return root
	}
	return root + "/"
}

// Lookup returns the widget registered under name. Unknown names return an
// ErrNotFound error suggesting the closest registered names.
func (r *Registry) Lookup(name string) (Widget, error) {
	if w, ok := r.byName[name]; ok {
		return w, nil
	}

	hint := ""
	if s := r.Suggest(name); len(s) > 0 {
		hint = "Did you mean " + strings.Join(s, " or ") + "?"
	}
	return Widget{}, serrors.NewNotFoundError(fmt.Sprintf("widget %q is not registered", name), "", hint)
}

// Suggest returns registered names within a small edit distance of name,
// closest first.
func (r *Registry) Suggest(name string) []string {
	type candidate struct {
		name string
		dist int
	}

	var candidates []candidate
	for registered := range r.byName {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(registered))
		if d <= maxSuggestionDistance {
			candidates = append(candidates, candidate{registered, d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}

// List returns all widgets sorted by name.
func (r *Registry) List() []Widget {
	list := make([]Widget, 0, len(r.byName))
	for _, w := range r.byName {
		list = append(list, w)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// ResolveControllerType implements designer.ControllerResolver.
func (r *Registry) ResolveControllerType(widgetName string) (designer.ControllerType, error) {
	w, err := r.Lookup(widgetName)
	if err != nil {
		return "", err
	}
	return w.Type, nil
}

// ControllerName implements designer.ControllerResolver.
func (r *Registry) ControllerName(t designer.ControllerType) string {
	return r.byType[t]
}

// VirtualPath implements designer.PathBuilder.
func (r *Registry) VirtualPath(t designer.ControllerType) string {
	name, ok := r.byType[t]
	if !ok {
		return ""
	}
	return r.byName[name].Root
}

// AddParams implements designer.PathBuilder.
func (r *Registry) AddParams(path, packageTag string) string {
	return vfs.AddParams(path, packageTag)
}
