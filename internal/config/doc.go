// Package config loads, validates, and normalizes splice configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/splice/config.toml. Load falls back to built-in defaults when no
// file exists, expands ~ in every path field, and rejects inconsistent
// values up front so the rest of the system can trust the struct it is
// handed.
package config
