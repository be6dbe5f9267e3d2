package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DesignerView is the printable form of a resolved designer.
type DesignerView struct {
	Widget           string   `json:"widget" yaml:"widget"`
	Package          string   `json:"package,omitempty" yaml:"package,omitempty"`
	Views            []string `json:"views" yaml:"views"`
	DefaultView      string   `json:"defaultView" yaml:"defaultView"`
	ScriptReferences []string `json:"scriptReferences" yaml:"scriptReferences"`
}

// WidgetRow is the printable form of a registered widget.
type WidgetRow struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Root    string `json:"root,omitempty" yaml:"root,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
}

// WriteDesigner writes a resolved designer in the given format.
func WriteDesigner(w io.Writer, d DesignerView, format Format) error {
	// Keep empty lists as [] rather than null in JSON and YAML.
	if d.Views == nil {
		d.Views = []string{}
	}
	if d.ScriptReferences == nil {
		d.ScriptReferences = []string{}
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, d)
	case FormatYAML:
		return writeYAML(w, d)
	case FormatTable:
		_, err := fmt.Fprintln(w, designerTable(d))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func designerTable(d DesignerView) string {
	t := NewTable("KIND", "VALUE", "")
	for _, v := range d.Views {
		marker := ""
		if v == d.DefaultView {
			marker = StyleDefault.Render("default")
		}
		t.Row("view", v, marker)
	}
	for _, s := range d.ScriptReferences {
		t.Row("script", s, "")
	}
	return t.String()
}

// WriteWidgets writes the widget registry in the given format.
func WriteWidgets(w io.Writer, rows []WidgetRow, format Format) error {
	if rows == nil {
		rows = []WidgetRow{}
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	case FormatTable:
		t := NewTable("NAME", "TYPE", "ROOT", "SECTION")
		for _, r := range rows {
			root := r.Root
			if root == "" {
				root = "~/"
			}
			t.Row(r.Name, r.Type, root, r.Section)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
