// Package config handles configuration management for restruct.
// Settings are layered from the embedded defaults, an optional TOML file
// under the xdg config home and RESTRUCT_* environment variables.
package config
