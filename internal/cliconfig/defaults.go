package cliconfig

// DefaultVersion is the identifier version printed when none is configured.
const DefaultVersion = VersionV1

// DefaultCount is the number of identifiers printed per run.
const DefaultCount = 1

// MaxCount bounds a single run.
const MaxCount = 10_000_000

// DefaultLogLevel keeps stderr quiet unless a fingerprint falls back.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	return &CLIConfig{
		Version:   DefaultVersion,
		Count:     DefaultCount,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
}
