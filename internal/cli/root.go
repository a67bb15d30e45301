// Package cli provides the command-line interface for rosetta.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/crossdialect/rosetta/internal/cli/commands"
	"github.com/crossdialect/rosetta/internal/cli/config"
	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rosetta",
		Short: "Rosetta - Common Dictionary Tools",
		Long: `Rosetta loads and validates cross-dialect common dictionaries: shared
definitions of data types, entities, properties and enumerations kept as a
directory of YAML files, used to drive code generation and translation
between dialects.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			setupLogging(cfg)

			ctx := context.WithValue(cmd.Context(), commands.ConfigKey{}, cfg)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			ctx = context.WithValue(ctx, commands.RendererKey{}, renderer)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Common dictionary loader and validator
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rosetta.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log informational messages")
	rootCmd.PersistentFlags().Bool("very-verbose", false, "Log debug messages, including every loaded record")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewEnumsCommand())

	return rootCmd
}

// setupLogging configures the default slog logger from the verbosity
// settings: warnings only by default, info with -v, debug with -vv.
func setupLogging(cfg *config.Config) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	if cfg.VeryVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
