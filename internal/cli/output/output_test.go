package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, valid := range ValidModes() {
		m, err := ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, Mode(valid), m)
	}

	_, err := ParseMode("yaml")
	assert.Error(t, err)
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on tty is text", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped is markdown", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "explicit text", mode: ModeText, isTTY: false, want: ModeText},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestResultText(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, true, ModeText)

	require.NoError(t, r.Result("[1, 2, 3]", []any{int64(1), int64(2), int64(3)}))
	assert.Equal(t, "[1, 2, 3]\n", out.String())
}

func TestResultJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)

	require.NoError(t, r.Result("[1, 2]", []any{int64(1), int64(2)}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, []any{float64(1), float64(2)}, doc["result"])
}

func TestResultMarkdown(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)

	require.NoError(t, r.Result("[1]", []any{int64(1)}))
	assert.Equal(t, "```python\n[1]\n```\n", out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Title", FormatHeader(2, "Title"))
	assert.Equal(t, "```python\nx\n```", FormatCodeBlock("python", "x"))
}
