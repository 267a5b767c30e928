// Package commands implements the prepkit subcommands. Each operation is a
// thin boundary: parse the list literal, validate it for the target
// transform, call one core function, render the result.
package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/prepkit/internal/cli/config"
	"github.com/leapstack-labs/prepkit/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's config and
// context-carried logger.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables so commands behave sensibly when executed outside
// the root command (as in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	outputFormat := os.Getenv("PREPKIT_OUTPUT")
	if outputFormat == "" {
		outputFormat = config.DefaultOutput
	}
	fillValue := os.Getenv("PREPKIT_FILL_VALUE")
	if fillValue == "" {
		fillValue = config.DefaultFillValue
	}

	return &config.Config{
		OutputFormat: outputFormat,
		Verbose:      os.Getenv("PREPKIT_VERBOSE") == "true",
		FillValue:    fillValue,
	}
}
