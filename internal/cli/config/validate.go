package config

import (
	"fmt"

	"github.com/leapstack-labs/prepkit/internal/cli/output"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	return nil
}
