// Package vfs maps application-relative virtual paths onto a site directory.
//
// Virtual paths may be app-relative ("~/Mvc/Views/News"), rooted ("/Mvc/...")
// or relative. A path may carry a package parameter added by AddParams; such
// paths are looked up under ResourcePackages/<package>/ first and fall back to
// the unparameterized file.
package vfs

import (
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
)

// PackagesDir holds per-package overrides of site files.
const PackagesDir = "ResourcePackages"

// DirFS resolves virtual paths against an fs.FS rooted at the site directory.
type DirFS struct {
	fsys fs.FS
}

// New creates a DirFS over fsys, typically the site directory wrapped with
// afero.NewIOFS.
func New(fsys fs.FS) *DirFS {
	return &DirFS{fsys: fsys}
}

// Clean converts a virtual path to an fs.FS path. "~/" and leading slashes are
// dropped and ".." cannot climb above the site root. The root itself is ".".
func Clean(virtualPath string) string {
	p := strings.TrimPrefix(virtualPath, "~")
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// AddParams parameterizes a virtual path with a package tag. The extension is
// repeated after the tag so the result keeps its file type:
//
//	AddParams("~/Mvc/Scripts/x.js", "Bootstrap") == "~/Mvc/Scripts/x.js#Bootstrap.js"
func AddParams(virtualPath, params string) string {
	if params == "" {
		return virtualPath
	}
	return virtualPath + "#" + params + path.Ext(virtualPath)
}

// SplitParams undoes AddParams, returning the plain path and the package tag.
func SplitParams(virtualPath string) (string, string) {
	base, params, ok := strings.Cut(virtualPath, "#")
	if !ok {
		return virtualPath, ""
	}
	return base, strings.TrimSuffix(params, path.Ext(base))
}

// candidates lists the fs.FS paths to try for a virtual path, most specific first.
func candidates(virtualPath string) []string {
	base, pkg := SplitParams(virtualPath)
	plain := Clean(base)
	if pkg == "" {
		return []string{plain}
	}
	return []string{path.Join(PackagesDir, pkg, plain), plain}
}

// Exists reports whether a regular file exists at the virtual path.
func (d *DirFS) Exists(virtualPath string) bool {
	_, ok := d.locate(virtualPath)
	return ok
}

// Open opens the file at the virtual path.
func (d *DirFS) Open(virtualPath string) (io.ReadCloser, error) {
	name, ok := d.locate(virtualPath)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: virtualPath, Err: fs.ErrNotExist}
	}
	return d.fsys.Open(name)
}

func (d *DirFS) locate(virtualPath string) (string, bool) {
	for _, name := range candidates(virtualPath) {
		info, err := fs.Stat(d.fsys, name)
		if err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}

// List returns the names of the regular files directly inside the virtual
// directory, sorted by name. A missing directory yields no names.
func (d *DirFS) List(virtualDir string) ([]string, error) {
	entries, err := fs.ReadDir(d.fsys, Clean(virtualDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
