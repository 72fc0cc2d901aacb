// Package config handles application configuration loading and validation.
//
// Configuration is optional: without a file the built-in defaults apply,
// including the default banned agency list. A YAML file named by the
// GTFS_PRUNE_CONFIG environment variable (or a .env file) is read over the
// defaults and validated using struct tags.
package config
