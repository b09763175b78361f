// Package config handles configuration management for goconemu.
// It layers the embedded defaults, an optional user TOML or YAML file,
// GOCONEMU_* environment variables and command-line flags, later sources
// overriding earlier ones.
package config
