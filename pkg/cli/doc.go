// Package cli provides the command-line interface for cuid.
//
// Commands:
//   - cuid: Print one or more identifiers (V1 by default, --v2 for V2)
//   - validate: Check that identifiers have a valid V1, V2 or slug shape
//   - version: Show cuid version information
//
// Settings are read from flags, CUID_* environment variables (optionally
// seeded from --env-file), and a YAML config file, in that order of
// precedence. See the cliconfig package.
//
// Identifiers go to stdout, one per line, or as a JSON document with --json.
// Logs go to stderr.
//
// Usage:
//
//	cuid
//	cuid --v2 --length 32 -n 10
//	cuid --slug
//	cuid validate --v2 tz4a98xxat96iws9zmbrgj3a
//	cuid version --json
package cli
