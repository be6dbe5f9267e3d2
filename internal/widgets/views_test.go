package widgets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitefinity/sfdesigner/internal/vfs"
)

func TestWidget_ViewLocations(t *testing.T) {
	assert.Equal(t, []string{"~/Mvc/Views/ContentBlock"}, Widget{Name: "ContentBlock"}.ViewLocations())
	assert.Equal(t, []string{
		"~/Mvc/Views/Designer",
		"~/" + DesignerRoot + "Mvc/Views/Designer",
	}, Designer().ViewLocations())
}

func TestDiscoverViews(t *testing.T) {
	site := vfs.New(fstest.MapFS{
		"Mvc/Views/News/DesignerView.Simple.cshtml":                         {},
		"Mvc/Views/News/DesignerView.Simple.json":                           {},
		"Frontend-Assembly/App/Mvc/Views/News/DesignerView.Simple.cshtml":   {},
		"Frontend-Assembly/App/Mvc/Views/News/DesignerView.Advanced.cshtml": {},
	})

	views, err := DiscoverViews(site, []string{"~/Mvc/Views/News", "~/Frontend-Assembly/App/Mvc/Views/News"})
	require.NoError(t, err)
	assert.Equal(t, []string{"DesignerView.Simple.cshtml", "DesignerView.Advanced.cshtml"}, views)
}

type failingLister struct{}

func (failingLister) List(string) ([]string, error) { return nil, errors.New("permission denied") }

func TestDiscoverViews_Error(t *testing.T) {
	_, err := DiscoverViews(failingLister{}, []string{"~/Mvc/Views/News"})
	assert.Error(t, err)
}
