// Package commands implements the rosetta CLI subcommands.
package commands

import (
	"github.com/crossdialect/rosetta/internal/cli/config"
	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/spf13/cobra"
)

// ConfigKey is the context key under which the root command stores the
// resolved CLI configuration.
type ConfigKey struct{}

// RendererKey is the context key under which the root command stores the
// output renderer.
type RendererKey struct{}

// cliConfig returns the configuration stored in the command context, or a
// zero-value config when the command runs outside the root (tests).
func cliConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(ConfigKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{OutputFormat: config.DefaultOutput}
}

// renderer returns the renderer stored in the command context, or one bound
// to the command's writers when the command runs outside the root (tests).
func renderer(cmd *cobra.Command) *output.Renderer {
	if r, ok := cmd.Context().Value(RendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)
}
