package cliconfig

import "strings"

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}

	if source.Version != "" {
		target.Version = strings.ToLower(source.Version)
		target.SetSource("version", sourceType)
	}
	if source.Length != 0 {
		target.Length = source.Length
		target.SetSource("length", sourceType)
	}
	if source.Count != 0 {
		target.Count = source.Count
		target.SetSource("count", sourceType)
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.SetSource("logLevel", sourceType)
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.SetSource("logFormat", sourceType)
	}
	if boolIsSet(source, "slug") {
		target.Slug = source.Slug
		target.SetSource("slug", sourceType)
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.SetSource("json", sourceType)
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in cfg. Without SetFields only true counts as set.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "slug":
		return cfg.Slug
	case "json":
		return cfg.JSON
	}
	return false
}
