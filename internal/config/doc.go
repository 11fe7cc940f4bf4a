// Package config loads and validates the avtool TOML configuration.
//
// Configuration is entirely optional: Load succeeds with built-in defaults
// when no file exists. Resolution order is the explicit --config flag,
// ~/.config/avtool/config.toml, then ./avtool.toml. Command-line flags
// always override configured values.
package config
