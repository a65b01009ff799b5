// Package config loads, normalizes, and validates the spritegen TOML
// configuration. Values resolve in order: built-in defaults, the config
// file, then environment fallbacks for credentials.
package config
