package templates

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sitefinity/sfdesigner/internal/designer"
	"github.com/sitefinity/sfdesigner/internal/output"
)

// Generator handles view generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate writes a designer view for a widget. Existing files are only
// overwritten with Force, and nothing is written if any file would clash.
func (g *Generator) Generate() (*GenerateResult, error) {
	name := g.opts.TemplateName
	if name == "" {
		name = DefaultTemplateName
	}
	tmpl, err := Get(name)
	if err != nil {
		return nil, err
	}

	if err := ValidateWidgetName(g.opts.Widget); err != nil {
		return nil, err
	}
	if err := ValidateViewName(g.opts.View); err != nil {
		return nil, err
	}

	scriptFile, err := designer.ViewScriptFileName(g.opts.View)
	if err != nil {
		return nil, err
	}

	title := g.opts.Title
	if title == "" {
		title = "Title"
	}

	data := TemplateData{
		Widget:     g.opts.Widget,
		View:       g.opts.View,
		ViewID:     strings.TrimSuffix(strings.TrimPrefix(scriptFile, designer.ScriptPrefix), ".js"),
		Title:      title,
		Controller: controllerName(g.opts.View),
		ScriptFile: scriptFile,
		Hidden:     g.opts.Hidden,
		Priority:   g.opts.Priority,
		Scripts:    g.opts.Scripts,
	}

	output.Debug("generating designer view",
		"template", tmpl.Name,
		"widget", data.Widget,
		"view", data.View,
		"target", g.opts.TargetDir)

	files, err := NewRenderer(data).RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	fsys := g.opts.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if !g.opts.Force {
		for _, f := range files {
			targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))
			if _, err := fsys.Stat(targetPath); err == nil {
				return nil, fmt.Errorf("file %s already exists; use --force to overwrite", targetPath)
			}
		}
	}

	created := make(map[string]string, len(files))
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))

		parentDir := filepath.Dir(targetPath)
		if err := fsys.MkdirAll(parentDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", parentDir, err)
		}
		if err := afero.WriteFile(fsys, targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		created[f.TargetPath] = describe(f.TargetPath)
	}

	return &GenerateResult{
		Files:        created,
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
	}, nil
}

func describe(path string) string {
	switch filepath.Ext(path) {
	case ".cshtml":
		return "view markup"
	case ".json":
		return "view config"
	case ".js":
		return "client script"
	default:
		return ""
	}
}
