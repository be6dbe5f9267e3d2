package designer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// memFS is a FileSystem backed by a map of virtual path to content.
type memFS struct {
	files  map[string]string
	probes []string
}

func (m *memFS) Exists(path string) bool {
	m.probes = append(m.probes, path)
	_, ok := m.files[path]
	return ok
}

func (m *memFS) Open(path string) (io.ReadCloser, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, serrors.ErrNotFound)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

// stubControllers registers the test widget and the designer.
type stubControllers map[string]ControllerType

func (s stubControllers) ResolveControllerType(name string) (ControllerType, error) {
	t, ok := s[name]
	if !ok {
		return "", serrors.ErrNotFound
	}
	return t, nil
}

func (s stubControllers) ControllerName(t ControllerType) string {
	for name, ct := range s {
		if ct == t {
			return name
		}
	}
	return ""
}

type stubPaths map[ControllerType]string

func (s stubPaths) VirtualPath(t ControllerType) string { return s[t] }

func (s stubPaths) AddParams(path, pkg string) string { return path + "#" + pkg }

type stubPackage string

func (s stubPackage) CurrentPackage() string { return string(s) }

const (
	newsType   ControllerType = "SitefinityWebApp.Mvc.Controllers.NewsController"
	newsRoot                  = "Frontend-Assembly/SitefinityWebApp/"
	designRoot                = "Frontend-Assembly/Telerik.Sitefinity.Frontend/"
)

func newTestResolver(files map[string]string, pkg string) (*Resolver, *memFS) {
	fs := &memFS{files: files}
	controllers := stubControllers{
		"News":     newsType,
		"Designer": DesignerControllerType,
	}
	paths := stubPaths{
		newsType:               newsRoot,
		DesignerControllerType: designRoot,
	}
	return New(fs, controllers, paths, stubPackage(pkg)), fs
}

func twoViews() Options {
	return Options{
		Views:         []string{"DesignerView.Simple.cshtml", "DesignerView.Advanced.cshtml"},
		ViewLocations: []string{"~/Views"},
		WidgetName:    "News",
	}
}

func TestResolve_NoConfigs(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{"Simple", "Advanced"}, m.Views())
	assert.Empty(t, m.DefaultView())
	assert.Empty(t, m.ScriptReferences())
}

func TestResolve_DiscoveryFiltersNonDesignerViews(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	m, err := r.Resolve(Options{
		Views: []string{
			"Index.cshtml",
			"DesignerView.Simple.cshtml",
			"designerview.lower.cshtml",
			"",
			"List.DesignerView.cshtml",
			"DesignerView.Foo.Bar.cshtml",
		},
		ViewLocations: []string{"~/Views"},
		WidgetName:    "News",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Simple", "Foo.Bar"}, m.Views())
}

func TestResolve_DefaultViewByPriority(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Advanced.json": `{"Priority":5}`,
		"~/Views/DesignerView.Simple.json":   `{"Priority":1,"Hidden":false}`,
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, "Advanced", m.DefaultView())
	assert.Equal(t, []string{"Simple", "Advanced"}, m.Views())
}

func TestResolve_DefaultViewTieKeepsFirst(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Advanced.json": `{"Priority":3}`,
		"~/Views/DesignerView.Simple.json":   `{"Priority":3}`,
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, "Simple", m.DefaultView())
}

func TestResolve_DefaultViewIgnoresViewsWithoutConfig(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Advanced.json": `{"Priority":-2}`,
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, "Advanced", m.DefaultView())
}

func TestResolve_HiddenViewDropped(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Advanced.json": `{"Hidden":true,"Priority":9,"Scripts":["Mvc/Scripts/News/advanced-extra.js"]}`,
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{"Simple"}, m.Views())
	assert.Empty(t, m.DefaultView(), "hidden view must not become the default")
	assert.NotContains(t, m.ScriptReferences(), "Mvc/Scripts/News/advanced-extra.js")
}

func TestResolve_PreselectedView(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Advanced.json": `{"Hidden":true,"Priority":1,"Scripts":["x.js"]}`,
	}, "")

	opts := twoViews()
	opts.PreselectedView = "Advanced"

	m, err := r.Resolve(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Advanced"}, m.Views())
	assert.Equal(t, "Advanced", m.DefaultView())
	assert.Equal(t, []string{"x.js"}, m.ScriptReferences(), "a preselected hidden view keeps its configured scripts")
}

func TestResolve_PreselectedViewIgnoresPrefix(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	m, err := r.Resolve(Options{
		Views:           []string{"DesignerView.Simple.cshtml"},
		ViewLocations:   []string{"~/Views"},
		WidgetName:      "News",
		PreselectedView: "Custom",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Custom"}, m.Views())
}

func TestResolve_ConfigFirstLocationWins(t *testing.T) {
	r, fs := newTestResolver(map[string]string{
		"~/Theme/DesignerView.Simple.json": `{"Priority":7}`,
		"~/Views/DesignerView.Simple.json": `{"Priority":1}`,
	}, "")

	m, err := r.Resolve(Options{
		Views:         []string{"DesignerView.Simple.cshtml", "DesignerView.Advanced.cshtml"},
		ViewLocations: []string{"~/Theme", "~/Views"},
		WidgetName:    "News",
	})
	require.NoError(t, err)
	assert.Equal(t, "Simple", m.DefaultView())

	// Simple's config is found in the first location; the second is never probed.
	assert.NotContains(t, fs.probes, "~/Views/DesignerView.Simple.json")
	assert.Contains(t, fs.probes, "~/Views/DesignerView.Advanced.json")
}

func TestResolve_ConfigLoadedOncePerView(t *testing.T) {
	r, fs := newTestResolver(map[string]string{
		"~/Views/DesignerView.Simple.json": `{"Priority":1}`,
	}, "")

	_, err := r.Resolve(twoViews())
	require.NoError(t, err)

	count := 0
	for _, p := range fs.probes {
		if p == "~/Views/DesignerView.Simple.json" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResolve_ScriptWidgetLocalPreferred(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/" + newsRoot + "Mvc/Scripts/News/designerview-simple.js":       "",
		"~/" + designRoot + "Mvc/Scripts/Designer/designerview-simple.js": "",
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mvc/Scripts/News/designerview-simple.js"}, m.ScriptReferences())
}

func TestResolve_ScriptDesignerFallback(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/" + designRoot + "Mvc/Scripts/Designer/designerview-advanced.js": "",
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mvc/Scripts/Designer/designerview-advanced.js"}, m.ScriptReferences())
}

func TestResolve_ScriptPathsCarryPackage(t *testing.T) {
	r, fs := newTestResolver(map[string]string{
		"~/" + newsRoot + "Mvc/Scripts/News/designerview-simple.js#Bootstrap": "",
	}, "Bootstrap")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mvc/Scripts/News/designerview-simple.js"}, m.ScriptReferences())
	assert.Contains(t, fs.probes, "~/"+designRoot+"Mvc/Scripts/Designer/designerview-advanced.js#Bootstrap")
}

func TestResolve_ScriptReferencesDeduplicated(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/" + newsRoot + "Mvc/Scripts/News/designerview-simple.js": "",
		"~/Views/DesignerView.Simple.json":                          `{"Scripts":["Mvc/Scripts/News/designerview-simple.js","Mvc/Scripts/shared.js"]}`,
		"~/Views/DesignerView.Advanced.json":                        `{"Scripts":["Mvc/Scripts/shared.js","Mvc/Scripts/advanced.js"]}`,
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Mvc/Scripts/News/designerview-simple.js",
		"Mvc/Scripts/shared.js",
		"Mvc/Scripts/advanced.js",
	}, m.ScriptReferences())
}

func TestResolve_EmptyConfigFileIsNoConfig(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Simple.json":   "  \n",
		"~/Views/DesignerView.Advanced.json": "null",
	}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	assert.Empty(t, m.DefaultView())
	assert.Equal(t, []string{"Simple", "Advanced"}, m.Views())
}

func TestResolve_MalformedConfig(t *testing.T) {
	r, _ := newTestResolver(map[string]string{
		"~/Views/DesignerView.Simple.json": `{"Priority":`,
	}, "")

	_, err := r.Resolve(twoViews())
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrInvalidConfig))
}

func TestResolve_InvalidArguments(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "empty widget name",
			opts: Options{Views: []string{"DesignerView.Simple.cshtml"}, ViewLocations: []string{"~/Views"}},
		},
		{
			name: "nil view locations with views",
			opts: Options{Views: []string{"DesignerView.Simple.cshtml"}, WidgetName: "News"},
		},
		{
			name: "nil view locations with preselection",
			opts: Options{WidgetName: "News", PreselectedView: "Simple"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, serrors.ErrInvalidArgument))
		})
	}
}

func TestResolve_NoViewsNeedsNoLocations(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	m, err := r.Resolve(Options{Views: []string{"Index.cshtml"}, WidgetName: "News"})
	require.NoError(t, err)

	assert.Empty(t, m.Views())
	assert.Empty(t, m.ScriptReferences())
	assert.Empty(t, m.DefaultView())
}

func TestResolve_UnknownWidget(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	opts := twoViews()
	opts.WidgetName = "Blog"

	_, err := r.Resolve(opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestModel_AccessorsReturnCopies(t *testing.T) {
	r, _ := newTestResolver(map[string]string{}, "")

	m, err := r.Resolve(twoViews())
	require.NoError(t, err)

	views := m.Views()
	views[0] = "Mutated"
	assert.Equal(t, []string{"Simple", "Advanced"}, m.Views())
}
