// Package cliconfig provides configuration types and loading for the cuid
// command.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (CUID_* prefix), optionally seeded from a .env file
//  3. Config file (--config, CUID_CONFIG, or .cuidrc.yaml in the current directory)
//  4. Default values
//
// The package tracks the source of each configuration value so that
// "cuid --log-level debug" can report where a setting came from.
//
// Key types:
//
//   - CLIConfig: Complete configuration structure for the command
//   - LoadOptions: Explicit config and .env paths taken from flags
//
// Key functions:
//
//   - Load: Loads and merges configuration from all sources
//   - FindLocalConfig: Locates .cuidrc.yaml in the current directory
//   - LoadEnvConfig: Applies environment variable overrides
//   - CLIConfig.Validate: Reports every invalid field at once
package cliconfig
