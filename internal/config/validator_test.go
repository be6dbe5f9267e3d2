package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestValidator_Valid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	cfg := &Config{
		SiteRoot:      "/srv/site",
		ViewLocations: []string{"~/Mvc/Views/News"},
		Package:       "Bootstrap",
		Cache:         CacheConfig{Size: 10},
		Log:           LogConfig{Timestamps: boolPtr(true)},
		Widgets: []WidgetConfig{
			{Name: "News", Root: "Frontend-Assembly/SitefinityWebApp/"},
		},
	}

	assert.NoError(t, v.Validate(cfg))
	assert.NoError(t, v.Validate(DefaultConfig()))
}

func TestValidator_Invalid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name  string
		cfg   *Config
		field string
	}{
		{
			name:  "negative cache size",
			cfg:   &Config{Cache: CacheConfig{Size: -1}},
			field: "cache.size",
		},
		{
			name:  "package with spaces",
			cfg:   &Config{Package: "My Package"},
			field: "package",
		},
		{
			name:  "empty view location",
			cfg:   &Config{ViewLocations: []string{"~/Mvc/Views", ""}},
			field: "viewLocations",
		},
		{
			name:  "invalid widget name",
			cfg:   &Config{Widgets: []WidgetConfig{{Name: "9lives"}}},
			field: "widgets",
		},
		{
			name:  "duplicate widget",
			cfg:   &Config{Widgets: []WidgetConfig{{Name: "News"}, {Name: "News"}}},
			field: "widgets.1.name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs)
			assert.Contains(t, verrs[0].Field, tt.field)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("cache:\n  size: -5\n"), 0o644))

	assert.Error(t, v.ValidateFile(configFile))
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())

	errs := ValidationErrors{{Field: "package", Message: "invalid"}}
	assert.Contains(t, errs.Error(), "package: invalid")
}
