// Package config loads, normalizes, and validates namekey configuration data.
//
// Configuration lives in a TOML file resolved from an explicit path, the user
// config directory, or the working directory, in that order. Missing files are
// not an error: defaults are used and paths are still expanded so callers can
// rely on absolute directories.
package config
