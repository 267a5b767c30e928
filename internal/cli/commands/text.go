package commands

import (
	"strings"

	"github.com/leapstack-labs/prepkit/internal/preprocess"
	"github.com/spf13/cobra"
)

// NewTextCommand creates the text command group.
func NewTextCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Text processing functions",
		Long:  `Tokenize free text, strip punctuation, and remove stopwords.`,
	}

	cmd.AddCommand(newTokenizeCommand())
	cmd.AddCommand(newRemovePunctuationCommand())
	cmd.AddCommand(newRemoveStopwordCommand())
	return cmd
}

func newTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Tokenize text into lowercase word and number tokens",
		Example: `  # -> ["hello", "world", "123"]
  prepkit text tokenize "Hello, World! 123"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			tokens := preprocess.Tokenize(args[0])
			ctx.Logger.Debug("tokenized text", "tokens", len(tokens))
			return renderResult(ctx, tokens)
		},
	}
}

func newRemovePunctuationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-punctuation <text>",
		Short: "Remove punctuation, keeping letters, digits, and spaces",
		Example: `  # -> Hello World
  prepkit text remove-punctuation "Hello, World!"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			return renderString(ctx, preprocess.RemovePunctuation(args[0]))
		},
	}
}

func newRemoveStopwordCommand() *cobra.Command {
	var stopwords string

	cmd := &cobra.Command{
		Use:   "remove-stopword <text>",
		Short: "Remove stopwords from text",
		Long: `Split text on whitespace, drop tokens that exactly match an entry in the
stopword list (matching is case-sensitive), and rejoin the rest with single
spaces. Without --stopwords the configured default list applies.`,
		Example: `  # -> this test
  prepkit text remove-stopword "this is a test" --stopwords "is,a"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)

			words := ctx.Cfg.Stopwords
			if cmd.Flags().Changed("stopwords") {
				words = splitStopwords(stopwords)
			}

			result := preprocess.RemoveStopwords(args[0], words)
			ctx.Logger.Debug("removed stopwords", "stopwords", len(words))
			return renderString(ctx, result)
		},
	}

	cmd.Flags().StringVar(&stopwords, "stopwords", "", "comma-separated list of stopwords to remove")
	return cmd
}

// splitStopwords parses the comma-separated --stopwords value, trimming
// whitespace around each entry.
func splitStopwords(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}
