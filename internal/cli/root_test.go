package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/prepkit/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRoot runs the full command tree and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootJSONOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := executeRoot(t, "--output", "json", "clean", "remove-missing", "[1, None, 2]")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []any{float64(1), float64(2)}, doc["result"])
}

func TestRootTextOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := executeRoot(t, "--output", "text", "struct", "unique", "[1, 2, 2, 3, 1]")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestRootMarkdownOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := executeRoot(t, "--output", "markdown", "struct", "flatten", "[[1], [2]]")
	require.NoError(t, err)
	assert.Equal(t, "```python\n[1, 2]\n```\n", out)
}

func TestRootInvalidOutputMode(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := executeRoot(t, "--output", "yaml", "struct", "unique", "[1]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRootInvalidLiteralFails(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := executeRoot(t, "--output", "text", "numeric", "normalize", "not a list")
	assert.Error(t, err)
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := `output: text
stopwords:
  - is
  - a
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prepkit.yaml"), []byte(content), 0o644))

	out, _, err := executeRoot(t, "text", "remove-stopword", "this is a test")
	require.NoError(t, err)
	assert.Equal(t, "this test\n", out)
}

func TestRootVerboseLogsToStderr(t *testing.T) {
	t.Chdir(t.TempDir())

	out, errOut, err := executeRoot(t, "--output", "text", "--verbose", "clean", "remove-missing", "[1, None]")
	require.NoError(t, err)
	assert.Equal(t, "[1]\n", out)
	assert.Contains(t, errOut, "removed missing values")
}

func TestRootVersionFlag(t *testing.T) {
	out, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "prepkit")
	assert.Contains(t, out, Version)
}

func TestRootUnknownCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := executeRoot(t, "frobnicate")
	assert.Error(t, err)
}
