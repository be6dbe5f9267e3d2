// Package config provides configuration loading and management.
package config

// CacheConfig contains file probe cache settings.
type CacheConfig struct {
	// Size is the number of existence probes kept in memory. 0 disables the cache.
	// Env: SFD_CACHE_SIZE, Default: 1024
	Size int `mapstructure:"size" json:"size,omitempty" yaml:"size"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// WidgetConfig declares a widget controller of the site.
type WidgetConfig struct {
	// Name is the public widget name.
	Name string `mapstructure:"name" json:"name" yaml:"name"`

	// Type is the controller type identifier. Derived from Name when empty.
	Type string `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`

	// Root is the widget's virtual root, e.g. "Frontend-Assembly/MyWidgets/".
	Root string `mapstructure:"root" json:"root,omitempty" yaml:"root,omitempty"`

	// Title is the toolbox title.
	Title string `mapstructure:"title" json:"title,omitempty" yaml:"title,omitempty"`

	// Section is the toolbox section.
	Section string `mapstructure:"section" json:"section,omitempty" yaml:"section,omitempty"`
}

// Config represents the sfdesigner configuration.
// Loaded from ~/.sfdesigner/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// SiteRoot is the directory that "~/" virtual paths resolve against.
	// Env: SFD_SITE_ROOT, Default: "."
	SiteRoot string `mapstructure:"siteRoot" json:"siteRoot,omitempty" yaml:"siteRoot"`

	// ViewLocations are searched for view sidecar configs. When empty, each
	// widget's default locations are used.
	ViewLocations []string `mapstructure:"viewLocations" json:"viewLocations,omitempty" yaml:"viewLocations,omitempty"`

	// Package is the active resource package tag.
	// Env: SFD_PACKAGE
	Package string `mapstructure:"package" json:"package,omitempty" yaml:"package,omitempty"`

	// Cache contains file probe cache settings.
	Cache CacheConfig `mapstructure:"cache" json:"cache" yaml:"cache"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log" yaml:"log"`

	// Widgets declares the site's widget controllers.
	Widgets []WidgetConfig `mapstructure:"widgets" json:"widgets,omitempty" yaml:"widgets,omitempty"`
}

// DefaultCacheSize is the probe cache size used when none is configured.
const DefaultCacheSize = 1024

// DefaultConfig returns a Config with all default values populated.
// Used by `sfdesigner config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		SiteRoot: ".",
		Cache: CacheConfig{
			Size: DefaultCacheSize,
		},
	}
}
