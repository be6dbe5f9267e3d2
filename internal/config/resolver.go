package config

import (
	"os"

	"github.com/sitefinity/sfdesigner/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString applies flag > env > config > default precedence.
func resolveString(key, flagValue, envName, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	layers := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envName)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, layer := range layers {
		if layer.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = layer.value
			result.Source = layer.source
			continue
		}
		result.Shadowed[layer.source] = layer.value
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SFD_CONFIG env, (3) ~/.sfdesigner/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return resolveString("config", opts.FlagValue, "SFD_CONFIG", "", paths.ConfigFile), nil
}

// ResolveAllOptions carries flag values and the loaded config file.
type ResolveAllOptions struct {
	SiteRootFlag string
	PackageFlag  string
	// ViewLocationsFlag replaces the configured view locations when non-empty.
	ViewLocationsFlag []string
	Config            *Config
}

// ResolvedConfig holds every resolved setting used by the resolve command.
type ResolvedConfig struct {
	SiteRoot      ResolvedValue
	Package       ResolvedValue
	ViewLocations []string
	CacheSize     int
}

// ResolveAll resolves the site root, package tag, and view locations.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{Cache: CacheConfig{Size: DefaultCacheSize}}
	}

	resolved := &ResolvedConfig{
		SiteRoot:      resolveString("siteRoot", opts.SiteRootFlag, "SFD_SITE_ROOT", cfg.SiteRoot, "."),
		Package:       resolveString("package", opts.PackageFlag, "SFD_PACKAGE", cfg.Package, ""),
		ViewLocations: cfg.ViewLocations,
		CacheSize:     cfg.Cache.Size,
	}
	if len(opts.ViewLocationsFlag) > 0 {
		resolved.ViewLocations = opts.ViewLocationsFlag
	}

	return resolved
}

// Values returns the tracked values in a stable order for logging.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.SiteRoot, r.Package}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

// StaticPackage is a package provider returning a fixed tag.
type StaticPackage string

// CurrentPackage implements designer.PackageProvider.
func (p StaticPackage) CurrentPackage() string {
	return string(p)
}
