package output

import (
	"cmp"
	"path"
	"slices"
	"strings"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentMid  = "│   "
	indentEnd  = "    "
	noteColumn = 30
)

// fileRole orders the files of a designer view scaffold: the view template,
// then its sidecar, then its client script.
func fileRole(name string) int {
	switch path.Ext(name) {
	case ".cshtml":
		return 0
	case ".json":
		return 1
	case ".js":
		return 2
	default:
		return 3
	}
}

type scaffoldEntry struct {
	name     string
	note     string
	children map[string]*scaffoldEntry
}

func (e *scaffoldEntry) isDir() bool {
	return e.children != nil
}

func (e *scaffoldEntry) child(name string, dir bool) *scaffoldEntry {
	c, ok := e.children[name]
	if !ok {
		c = &scaffoldEntry{name: name}
		if dir {
			c.children = map[string]*scaffoldEntry{}
		}
		e.children[name] = c
	}
	return c
}

// sorted lists the entry's children: directories by name, then files by role
// and name.
func (e *scaffoldEntry) sorted() []*scaffoldEntry {
	out := make([]*scaffoldEntry, 0, len(e.children))
	for _, c := range e.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *scaffoldEntry) int {
		if a.isDir() != b.isDir() {
			if a.isDir() {
				return -1
			}
			return 1
		}
		if !a.isDir() {
			if r := cmp.Compare(fileRole(a.name), fileRole(b.name)); r != 0 {
				return r
			}
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

// RenderFileTree draws the files written under rootName as a tree, with each
// file's note in a dim column. Files maps slash-separated relative paths to
// notes.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &scaffoldEntry{name: rootName, children: map[string]*scaffoldEntry{}}
	for name, note := range files {
		parts := strings.Split(path.Clean(strings.ReplaceAll(name, "\\", "/")), "/")
		dir := root
		for _, part := range parts[:len(parts)-1] {
			dir = dir.child(part, true)
		}
		dir.child(parts[len(parts)-1], false).note = note
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(strings.TrimSuffix(rootName, "/") + "/"))
	sb.WriteString("\n")
	writeEntries(&sb, root, "")
	return sb.String()
}

func writeEntries(sb *strings.Builder, dir *scaffoldEntry, indent string) {
	entries := dir.sorted()
	for i, e := range entries {
		branch, next := branchMid, indentMid
		if i == len(entries)-1 {
			branch, next = branchEnd, indentEnd
		}

		line := indent + branch + e.name
		if e.isDir() {
			line += "/"
		}
		if e.note != "" {
			// Box-drawing characters are one column wide but three bytes long.
			width := len([]rune(line))
			line += strings.Repeat(" ", max(noteColumn-width, 2)) + StyleDim.Render(e.note)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if e.isDir() {
			writeEntries(sb, e, indent+next)
		}
	}
}
