package commands

import "github.com/leapstack-labs/prepkit/internal/literal"

// renderResult writes a transformed value in the renderer's mode, using
// literal notation for text and markdown output.
func renderResult(ctx *CommandContext, value any) error {
	rendered, err := literal.Format(value)
	if err != nil {
		return err
	}
	return ctx.Renderer.Result(rendered, value)
}

// renderString writes a plain-string result without literal quoting, the way
// the text commands echo their output.
func renderString(ctx *CommandContext, s string) error {
	return ctx.Renderer.Result(s, s)
}
