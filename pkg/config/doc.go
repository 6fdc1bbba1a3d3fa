// Package config handles configuration management for cascade.
// It supports loading configuration from multiple sources including
// embedded defaults, TOML project files, environment variables, and
// programmatic overrides such as command-line flags.
package config
