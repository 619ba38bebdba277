// Package config handles configuration loading and management for apismoke.
//
// It provides functionality for:
//   - Loading configuration from JSON or YAML files
//   - Default configuration values
//   - Host overrides for the pro, dev and local environments
//   - ${VAR} expansion of hosts, headers and proxy from the process environment
package config
