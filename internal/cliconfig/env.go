package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Environment variable names
const (
	EnvVersion   = "CUID_VERSION"
	EnvLength    = "CUID_LENGTH"
	EnvSlug      = "CUID_SLUG"
	EnvCount     = "CUID_COUNT"
	EnvJSON      = "CUID_JSON"
	EnvLogLevel  = "CUID_LOG_LEVEL"
	EnvLogFormat = "CUID_LOG_FORMAT"
	EnvConfig    = "CUID_CONFIG"
)

// LoadEnvConfig applies CUID_* environment variables to cfg. It only sets
// values that are present in the environment, and reports every variable
// that could not be parsed.
func LoadEnvConfig(cfg *CLIConfig) error {
	var result *multierror.Error

	if v := os.Getenv(EnvVersion); v != "" {
		cfg.Version = strings.ToLower(v)
		cfg.SetSource("version", SourceEnv)
	}

	if v := os.Getenv(EnvLength); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Length = n
			cfg.SetSource("length", SourceEnv)
		} else {
			result = multierror.Append(result, fmt.Errorf("%s: %q is not an integer", EnvLength, v))
		}
	}

	if v := os.Getenv(EnvCount); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Count = n
			cfg.SetSource("count", SourceEnv)
		} else {
			result = multierror.Append(result, fmt.Errorf("%s: %q is not an integer", EnvCount, v))
		}
	}

	if v := os.Getenv(EnvSlug); v != "" {
		if b, err := parseBool(v); err == nil {
			cfg.Slug = b
			cfg.SetSource("slug", SourceEnv)
		} else {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvSlug, err))
		}
	}

	if v := os.Getenv(EnvJSON); v != "" {
		if b, err := parseBool(v); err == nil {
			cfg.JSON = b
			cfg.SetSource("json", SourceEnv)
		} else {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvJSON, err))
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.SetSource("logLevel", SourceEnv)
	}

	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.SetSource("logFormat", SourceEnv)
	}

	return result.ErrorOrNil()
}

// parseBool accepts the strconv forms plus yes/no.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", v)
	}
	return b, nil
}
