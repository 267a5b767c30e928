package commands

import (
	"time"

	"github.com/leapstack-labs/prepkit/internal/literal"
	"github.com/leapstack-labs/prepkit/internal/preprocess"
	"github.com/spf13/cobra"
)

// NewStructCommand creates the struct command group.
func NewStructCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "struct",
		Short: "Data structure manipulation functions",
		Long:  `Shuffle, flatten, and deduplicate lists.`,
	}

	cmd.AddCommand(newShuffleCommand())
	cmd.AddCommand(newFlattenCommand())
	cmd.AddCommand(newUniqueCommand())
	return cmd
}

func newShuffleCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "shuffle <list>",
		Short: "Shuffle list values pseudo-randomly",
		Long: `Permute a list with a deterministic Fisher-Yates shuffle. The same seed
always produces the same order. Without --seed the current time seeds the
shuffle, so repeated runs differ.`,
		Example: `  # Reproducible order
  prepkit struct shuffle "[1, 2, 3, 4, 5]" --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			s := seed
			if !cmd.Flags().Changed("seed") {
				s = time.Now().UnixNano()
			}

			result := preprocess.Shuffle(values, s)
			ctx.Logger.Debug("shuffled values", "count", len(result), "seed", s)
			return renderResult(ctx, result)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible shuffling")
	return cmd
}

func newFlattenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten <list>",
		Short: "Flatten nested lists into a single flat list",
		Long: `Recursively expand nested lists at any depth, preserving left-to-right,
depth-first order. Non-list elements pass through unchanged.`,
		Example: `  # Depth-first, left-to-right
  prepkit struct flatten "[[1, 2], [3, 4], [5]]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			result := preprocess.Flatten(values)
			ctx.Logger.Debug("flattened list",
				"input", len(values), "output", len(result))
			return renderResult(ctx, result)
		},
	}
}

func newUniqueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unique <list>",
		Short: "Remove duplicate values while preserving order",
		Example: `  # First occurrence wins
  prepkit struct unique "[1, 2, 2, 3, 1]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			values, err := literal.ParseList(args[0])
			if err != nil {
				return err
			}

			result := preprocess.Unique(values)
			ctx.Logger.Debug("removed duplicates",
				"input", len(values), "output", len(result))
			return renderResult(ctx, result)
		},
	}
}
