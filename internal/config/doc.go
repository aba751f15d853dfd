// Package config provides the command-level configuration for p455w0rd:
// flag defaults, validation, and the optional YAML defaults file
// resolved through XDG paths.
package config
