// Package config loads, normalizes, and validates tunesort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file from ~/.config/tunesort or the
// working directory. The Config type centralizes every knob the CLI needs:
// the default library root, the remove-source default, and logging behavior.
// Command-line flags always win over file values.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
