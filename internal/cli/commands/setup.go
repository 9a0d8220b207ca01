package commands

import (
	"log/slog"

	"github.com/leapstack-labs/truthtable/internal/cli/config"
	"github.com/leapstack-labs/truthtable/internal/cli/output"
	"github.com/leapstack-labs/truthtable/pkg/truthtable"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Builder  *truthtable.Builder
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd)
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Builder:  truthtable.NewBuilder(cfg.BuilderConfig(logger)),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// Markers returns the configured markers with blanks filled from the defaults.
func (c *CommandContext) Markers() truthtable.Markers {
	return c.Cfg.Markers.WithDefaults()
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available. Commands executed outside
// the root command load the configuration themselves.
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg, err := config.LoadConfig("", cmd.Flags())
	if err != nil {
		return config.Default()
	}
	return cfg
}
