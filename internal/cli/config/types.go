// Package config provides configuration management for the rosetta CLI.
//
// Configuration is resolved from, in order of precedence: command-line
// flags, ROSETTA_* environment variables, a rosetta.yaml config file, and
// built-in defaults.
package config

import (
	sharedcfg "github.com/crossdialect/rosetta/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool   `koanf:"verbose"`
	VeryVerbose  bool   `koanf:"very_verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values, re-exported from the shared config package.
const (
	DefaultDictionaryFile = sharedcfg.DefaultDictionaryFile
	DefaultOutput         = sharedcfg.DefaultOutput
)
