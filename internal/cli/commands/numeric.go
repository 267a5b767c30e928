package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/prepkit/internal/cli/output"
	"github.com/leapstack-labs/prepkit/internal/literal"
	"github.com/leapstack-labs/prepkit/internal/preprocess"
	"github.com/spf13/cobra"
)

// NewNumericCommand creates the numeric command group.
func NewNumericCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numeric",
		Short: "Numerical data processing functions",
		Long:  `Normalize, standardize, clip, coerce, and log-transform numeric lists.`,
	}

	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newStandardizeCommand())
	cmd.AddCommand(newClipCommand())
	cmd.AddCommand(newToIntegersCommand())
	cmd.AddCommand(newLogTransformCommand())
	cmd.AddCommand(newStatsCommand())
	return cmd
}

// parseFloats parses the positional list literal and coerces it to floats.
func parseFloats(arg string) ([]float64, error) {
	values, err := literal.ParseList(arg)
	if err != nil {
		return nil, err
	}
	floats, err := literal.Floats(values)
	if err != nil {
		return nil, fmt.Errorf("non-numeric input: %w", err)
	}
	return floats, nil
}

func newNormalizeCommand() *cobra.Command {
	var minVal, maxVal string

	cmd := &cobra.Command{
		Use:   "normalize <list>",
		Short: "Normalize numerical values using the min-max method",
		Example: `  # Rescale into [0, 1]
  prepkit numeric normalize "[1, 2, 3, 4, 5]"

  # Rescale into a custom range
  prepkit numeric normalize "[1, 2, 3, 4, 5]" --min-val -1 --max-val 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			floats, err := parseFloats(args[0])
			if err != nil {
				return err
			}
			lo, err := parseBound("min-val", minVal)
			if err != nil {
				return err
			}
			hi, err := parseBound("max-val", maxVal)
			if err != nil {
				return err
			}

			result := preprocess.Normalize(floats, asBoundFloat(lo), asBoundFloat(hi))
			ctx.Logger.Debug("normalized values", "count", len(result))
			return renderResult(ctx, result)
		},
	}

	cmd.Flags().StringVar(&minVal, "min-val", "0", "minimum value for normalization")
	cmd.Flags().StringVar(&maxVal, "max-val", "1", "maximum value for normalization")
	return cmd
}

func newStandardizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "standardize <list>",
		Short: "Standardize numerical values using the z-score method",
		Example: `  # Zero mean, unit variance (population stddev)
  prepkit numeric standardize "[1, 2, 3, 4, 5]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			floats, err := parseFloats(args[0])
			if err != nil {
				return err
			}

			result := preprocess.Standardize(floats)
			ctx.Logger.Debug("standardized values", "count", len(result))
			return renderResult(ctx, result)
		},
	}
}

func newClipCommand() *cobra.Command {
	var minVal, maxVal string

	cmd := &cobra.Command{
		Use:   "clip <list>",
		Short: "Clip numerical values to a specified range",
		Example: `  # Bound everything to [0, 1]
  prepkit numeric clip "[-1, 0.5, 2, 3]" --min-val 0 --max-val 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}
			if _, err := literal.Floats(values); err != nil {
				return fmt.Errorf("non-numeric input: %w", err)
			}
			lo, err := parseBound("min-val", minVal)
			if err != nil {
				return err
			}
			hi, err := parseBound("max-val", maxVal)
			if err != nil {
				return err
			}

			result := preprocess.Clip(values, lo, hi)
			ctx.Logger.Debug("clipped values", "count", len(result))
			return renderResult(ctx, result)
		},
	}

	cmd.Flags().StringVar(&minVal, "min-val", "0", "minimum value to clip to")
	cmd.Flags().StringVar(&maxVal, "max-val", "1", "maximum value to clip to")
	return cmd
}

func newToIntegersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-integers <list>",
		Short: "Convert values to integers, dropping what cannot be parsed",
		Long: `Parse each element as an integer, truncating parseable floating-point
representations. Elements that cannot be parsed are silently dropped, so the
output may be shorter than the input.`,
		Example: `  # '2.5' truncates to 2, 'abc' is dropped
  prepkit numeric to-integers "['1', '2.5', 'abc', '4']"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			result := preprocess.ToIntegers(values)
			ctx.Logger.Debug("converted to integers",
				"input", len(values), "output", len(result))
			return renderResult(ctx, result)
		},
	}
}

func newLogTransformCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log-transform <list>",
		Short: "Transform positive values to the natural logarithmic scale",
		Long: `Map each positive element to its natural logarithm. Zero and negative
elements are dropped from the output.`,
		Example: `  # ln of each positive element
  prepkit numeric log-transform "[1, 2, 10, 100]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			floats, err := parseFloats(args[0])
			if err != nil {
				return err
			}

			result := preprocess.LogTransform(floats)
			ctx.Logger.Debug("log-transformed values",
				"input", len(floats), "output", len(result))
			return renderResult(ctx, result)
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <list>",
		Short: "Show summary statistics for a numeric list",
		Example: `  # Count, mean, stddev, min, max
  prepkit numeric stats "[1, 2, 3, 4, 5]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			floats, err := parseFloats(args[0])
			if err != nil {
				return err
			}

			stats := preprocess.Describe(floats)
			r := ctx.Renderer

			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(map[string]any{
					"count":  stats.Count,
					"mean":   stats.Mean,
					"stddev": stats.Stddev,
					"min":    stats.Min,
					"max":    stats.Max,
				})
			default:
				t := table.NewWriter()
				t.SetOutputMirror(r.Writer())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"statistic", "value"})
				t.AppendRow(table.Row{"count", stats.Count})
				t.AppendRow(table.Row{"mean", fmt.Sprintf("%g", stats.Mean)})
				t.AppendRow(table.Row{"stddev", fmt.Sprintf("%g", stats.Stddev)})
				t.AppendRow(table.Row{"min", fmt.Sprintf("%g", stats.Min)})
				t.AppendRow(table.Row{"max", fmt.Sprintf("%g", stats.Max)})
				t.Render()
				return nil
			}
		},
	}
}

// parseBound parses a numeric option value given in literal syntax. The
// parsed type matters for clip: an integer bound clips to integers, a float
// bound to floats.
func parseBound(name, raw string) (any, error) {
	v, err := literal.ParseScalar(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	if err := literal.Number(v); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return v, nil
}

func asBoundFloat(v any) float64 {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case float64:
		return val
	}
	return 0
}
