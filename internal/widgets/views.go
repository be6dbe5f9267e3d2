package widgets

import "path"

// ViewExtension is the extension of view templates. Other files in a view
// folder, such as sidecar configs, are not views.
const ViewExtension = ".cshtml"

// ViewLocations returns the default places the widget's views live: the
// site's own Mvc/Views folder, then the folder inside the widget's root.
func (w Widget) ViewLocations() []string {
	locations := []string{"~/Mvc/Views/" + w.Name}
	if w.Root != "" {
		locations = append(locations, "~/"+w.Root+"Mvc/Views/"+w.Name)
	}
	return locations
}

// Lister lists the files of a virtual directory.
type Lister interface {
	List(dir string) ([]string, error)
}

// DiscoverViews collects the view file names found in locations. A name
// present in several locations is reported once, at its first position.
func DiscoverViews(l Lister, locations []string) ([]string, error) {
	seen := make(map[string]bool)
	var views []string
	for _, loc := range locations {
		names, err := l.List(loc)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if path.Ext(name) != ViewExtension || seen[name] {
				continue
			}
			seen[name] = true
			views = append(views, name)
		}
	}
	return views, nil
}
