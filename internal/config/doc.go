// Package config loads and validates the application's settings. Values come
// from environment variables (prefixed SANSKRIT_) and an optional config file,
// with sensible defaults for everything that is not security sensitive. The
// resulting Config struct is the single typed view of configuration the rest
// of the code sees.
package config
