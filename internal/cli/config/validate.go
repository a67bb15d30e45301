package config

import "fmt"

// validOutputFormats are the renderer modes the CLI understands.
var validOutputFormats = map[string]bool{
	"auto": true,
	"text": true,
	"json": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q, must be one of: auto, text, json", c.OutputFormat)
	}
	return nil
}
