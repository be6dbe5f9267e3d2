package vfs

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"Mvc/Views/News/DesignerView.Simple.cshtml":                       {Data: []byte("@* simple *@")},
		"Mvc/Views/News/DesignerView.Simple.json":                         {Data: []byte(`{"Priority":1}`)},
		"Mvc/Views/News/Index.cshtml":                                     {Data: []byte("")},
		"Mvc/Views/News/Partials/Item.cshtml":                             {Data: []byte("")},
		"Mvc/Scripts/News/designerview-simple.js":                         {Data: []byte("// plain")},
		"ResourcePackages/Bootstrap/Mvc/Scripts/News/designerview-simple.js": {Data: []byte("// bootstrap")},
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"~/Mvc/Views/News", "Mvc/Views/News"},
		{"/Mvc/Views/News/", "Mvc/Views/News"},
		{"Mvc/./Views", "Mvc/Views"},
		{"~/../secrets.txt", "secrets.txt"},
		{`~\Mvc\Views`, "Mvc/Views"},
		{"~/", "."},
		{"", "."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestAddParamsRoundTrip(t *testing.T) {
	p := AddParams("~/Mvc/Scripts/News/designerview-simple.js", "Bootstrap")
	assert.Equal(t, "~/Mvc/Scripts/News/designerview-simple.js#Bootstrap.js", p)

	base, pkg := SplitParams(p)
	assert.Equal(t, "~/Mvc/Scripts/News/designerview-simple.js", base)
	assert.Equal(t, "Bootstrap", pkg)

	assert.Equal(t, "~/x.js", AddParams("~/x.js", ""))
	base, pkg = SplitParams("~/x.js")
	assert.Equal(t, "~/x.js", base)
	assert.Empty(t, pkg)
}

func TestDirFS_Exists(t *testing.T) {
	d := New(siteFS())

	assert.True(t, d.Exists("~/Mvc/Views/News/DesignerView.Simple.json"))
	assert.False(t, d.Exists("~/Mvc/Views/News/DesignerView.Advanced.json"))
	assert.False(t, d.Exists("~/Mvc/Views/News"), "directories are not files")
}

func TestDirFS_PackageOverride(t *testing.T) {
	d := New(siteFS())

	name, ok := d.locate(AddParams("~/Mvc/Scripts/News/designerview-simple.js", "Bootstrap"))
	require.True(t, ok)
	assert.Equal(t, "ResourcePackages/Bootstrap/Mvc/Scripts/News/designerview-simple.js", name)

	// A package without an override falls back to the plain file.
	name, ok = d.locate(AddParams("~/Mvc/Scripts/News/designerview-simple.js", "Foundation"))
	require.True(t, ok)
	assert.Equal(t, "Mvc/Scripts/News/designerview-simple.js", name)
}

func TestDirFS_Open(t *testing.T) {
	d := New(siteFS())

	rc, err := d.Open(AddParams("~/Mvc/Scripts/News/designerview-simple.js", "Bootstrap"))
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "// bootstrap", string(data))

	_, err = d.Open("~/missing.json")
	assert.Error(t, err)
}

func TestDirFS_List(t *testing.T) {
	d := New(siteFS())

	names, err := d.List("~/Mvc/Views/News")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"DesignerView.Simple.cshtml",
		"DesignerView.Simple.json",
		"Index.cshtml",
	}, names)

	names, err = d.List("~/Mvc/Views/Missing")
	require.NoError(t, err)
	assert.Empty(t, names)
}
