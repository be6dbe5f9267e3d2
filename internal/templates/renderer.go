package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data  TemplateData
	paths *strings.Replacer
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data TemplateData) *Renderer {
	return &Renderer{
		data: data,
		paths: strings.NewReplacer(
			placeholderWidget, data.Widget,
			placeholderView, data.View,
			placeholderScript, data.ScriptFile,
		),
	}
}

var funcs = template.FuncMap{
	"json": func(v []string) (string, error) {
		if v == nil {
			v = []string{}
		}
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(content []byte) ([]byte, error) {
	tmpl, err := template.New("file").Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// TemplateFile represents a file to be generated from a template.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the slash-separated output path with placeholders
	// substituted and the .tmpl suffix removed.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// RenderTemplate renders all files from a template and returns them.
func (r *Renderer) RenderTemplate(templateName string) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := fs.ReadFile(TemplateFS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rendered, err := r.RenderFile(content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		relPath := strings.TrimPrefix(path, templateName+"/")
		files = append(files, TemplateFile{
			SourcePath: path,
			TargetPath: r.paths.Replace(strings.TrimSuffix(relPath, ".tmpl")),
			Content:    rendered,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", templateName, err)
	}

	return files, nil
}

// ListTemplateFiles returns the unrendered file paths of a template.
func ListTemplateFiles(templateName string) ([]string, error) {
	var files []string

	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		relPath := strings.TrimPrefix(path, templateName+"/")
		files = append(files, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateName, err)
	}

	return files, nil
}
