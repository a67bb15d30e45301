// Package config holds configuration defaults shared between the CLI and
// any embedding code.
package config

// Default configuration values.
const (
	// DefaultDictionaryFile is the root file name assumed when a directory
	// is given instead of a file.
	DefaultDictionaryFile = "dictionary.yaml"

	// DefaultOutput auto-detects: text on a terminal, json when requested.
	DefaultOutput = "auto"
)
