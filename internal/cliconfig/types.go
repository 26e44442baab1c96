package cliconfig

// CLIConfig represents the complete configuration for the cuid command.
type CLIConfig struct {
	// Generation settings
	Version string `yaml:"version" json:"version"`
	Length  int    `yaml:"length,omitempty" json:"length,omitempty"`
	Slug    bool   `yaml:"slug" json:"slug"`
	Count   int    `yaml:"count" json:"count"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// ConfigFile is the file the config was read from, if any.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so an explicit
	// "slug: false" can override a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Identifier versions.
const (
	VersionV1 = "v1"
	VersionV2 = "v2"
)

// IsV2 reports whether the configured version is v2.
func (c *CLIConfig) IsV2() bool {
	return c.Version == VersionV2
}

// SetSource records that key was set by source.
func (c *CLIConfig) SetSource(key, source string) {
	if c.Sources == nil {
		c.Sources = make(map[string]string)
	}
	c.Sources[key] = source
}

// Source returns where key was set, or SourceDefault.
func (c *CLIConfig) Source(key string) string {
	if s, ok := c.Sources[key]; ok {
		return s
	}
	return SourceDefault
}
