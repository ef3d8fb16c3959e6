// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings from a YAML file, environment variables and
// built-in defaults, validating them, and making them accessible to the CLI and the
// encryption helpers.
package config
