package designer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	serrors "github.com/sitefinity/sfdesigner/internal/errors"
)

// LoadViewConfig probes viewLocations in order for the view's sidecar config
// and decodes the first one found. A view without a sidecar yields (nil, nil).
func LoadViewConfig(fs FileSystem, view string, viewLocations []string) (*ViewConfig, error) {
	if view == "" {
		return nil, serrors.NewInvalidArgumentError("view", "view name must not be empty")
	}
	if len(viewLocations) == 0 {
		return nil, serrors.NewInvalidArgumentError("viewLocations", "at least one view location is required")
	}

	for _, location := range viewLocations {
		path := strings.TrimSuffix(location, "/") + "/" + ConfigFileName(view)
		if !fs.Exists(path) {
			continue
		}

		return readViewConfig(fs, path)
	}

	return nil, nil
}

func readViewConfig(fs FileSystem, path string) (*ViewConfig, error) {
	rc, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening view config %s: %w", path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading view config %s: %w", path, err)
	}

	// An empty file or a JSON null carries no config.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var cfg *ViewConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, serrors.NewInvalidConfigError(path, err)
	}

	return cfg, nil
}
