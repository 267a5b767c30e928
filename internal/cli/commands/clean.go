package commands

import (
	"fmt"

	"github.com/leapstack-labs/prepkit/internal/literal"
	"github.com/leapstack-labs/prepkit/internal/preprocess"
	"github.com/spf13/cobra"
)

// NewCleanCommand creates the clean command group.
func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Data cleaning functions",
		Long:  `Remove or substitute missing values (None, empty strings, NaN) in a list.`,
	}

	cmd.AddCommand(newRemoveMissingCommand())
	cmd.AddCommand(newFillMissingCommand())
	return cmd
}

func newRemoveMissingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-missing <list>",
		Short: "Remove missing values from a list",
		Example: `  # Drop None, empty strings, and NaN
  prepkit clean remove-missing "[1, None, 2, '', 3]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			result := preprocess.RemoveMissing(values)
			ctx.Logger.Debug("removed missing values",
				"input", len(values), "output", len(result))
			return renderResult(ctx, result)
		},
	}
}

func newFillMissingCommand() *cobra.Command {
	var fillValue string

	cmd := &cobra.Command{
		Use:   "fill-missing <list>",
		Short: "Fill missing values with a specified value",
		Example: `  # Replace None with 0
  prepkit clean fill-missing "[1, None, 2]" --fill-value 0

  # Replace missing entries with a string
  prepkit clean fill-missing "[1, None, 2]" --fill-value "'n/a'"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			raw := fillValue
			if !cmd.Flags().Changed("fill-value") {
				raw = ctx.Cfg.FillValue
			}
			fill := parseFillValue(raw)

			result := preprocess.FillMissing(values, fill)
			ctx.Logger.Debug("filled missing values",
				"elements", len(values), "fill", fmt.Sprintf("%v", fill))
			return renderResult(ctx, result)
		},
	}

	cmd.Flags().StringVar(&fillValue, "fill-value", "", "value to fill missing entries (literal syntax, defaults to config fill_value)")
	return cmd
}

// parseFillValue interprets the fill value as a scalar literal, falling back
// to the raw string so that --fill-value unknown works without quoting.
func parseFillValue(raw string) any {
	v, err := literal.ParseScalar(raw)
	if err != nil {
		return raw
	}
	return v
}
