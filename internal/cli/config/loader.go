package config

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// configFileUsed tracks which config file was loaded, for verbose output.
var configFileUsed string

// GetConfigFileUsed returns the path of the config file used by the last
// LoadConfig call, or "" when none was found.
func GetConfigFileUsed() string { return configFileUsed }

// findConfigFile finds the config file to use.
// Priority: explicit path > rosetta.yaml > rosetta.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"rosetta.yaml", "rosetta.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig loads configuration from defaults, config file, environment
// variables and flags. Precedence (highest to lowest):
// flags > env vars > config file > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	configFileUsed = ""

	defaults := map[string]any{
		"verbose":      false,
		"very_verbose": false,
		"output":       DefaultOutput,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			// A config file that exists but fails to parse is a hard error.
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		configFileUsed = path
	}

	if err := k.Load(env.Provider("ROSETTA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ROSETTA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
