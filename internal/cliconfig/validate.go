package cliconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/getmockd/cuid/pkg/cuid"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks every field and returns a *multierror.Error listing all
// problems, or nil.
func (c *CLIConfig) Validate() error {
	var result *multierror.Error

	switch c.Version {
	case VersionV1, VersionV2:
	default:
		result = multierror.Append(result, fmt.Errorf("version %q must be %s or %s", c.Version, VersionV1, VersionV2))
	}

	if c.Length != 0 {
		if c.Version == VersionV1 {
			result = multierror.Append(result, fmt.Errorf("length %d applies to %s only", c.Length, VersionV2))
		} else if c.Length < cuid.MinLength || c.Length > cuid.MaxLength {
			result = multierror.Append(result, fmt.Errorf("length %d is out of range (%d-%d)", c.Length, cuid.MinLength, cuid.MaxLength))
		}
		if c.Slug {
			result = multierror.Append(result, errors.New("slug and length cannot be combined"))
		}
	}

	if c.Count < 1 || c.Count > MaxCount {
		result = multierror.Append(result, fmt.Errorf("count %d is out of range (1-%d)", c.Count, MaxCount))
	}

	if !oneOf(c.LogLevel, validLogLevels) {
		result = multierror.Append(result, fmt.Errorf("logLevel %q must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", ")))
	}
	if !oneOf(c.LogFormat, validLogFormats) {
		result = multierror.Append(result, fmt.Errorf("logFormat %q must be one of %s", c.LogFormat, strings.Join(validLogFormats, ", ")))
	}

	return result.ErrorOrNil()
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
