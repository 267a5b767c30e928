// Package config provides configuration management for the prepkit CLI.
//
// Settings merge from four layers with the usual precedence, highest first:
// command-line flags, PREPKIT_* environment variables, a prepkit.yaml config
// file, and built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	// OutputFormat selects the renderer mode: auto, text, markdown, or json.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug-level logging on stderr.
	Verbose bool `koanf:"verbose"`

	// FillValue is the default replacement literal for clean fill-missing
	// when --fill-value is not given.
	FillValue string `koanf:"fill_value"`

	// Stopwords is the default stopword list for text remove-stopword when
	// --stopwords is not given.
	Stopwords []string `koanf:"stopwords"`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // TTY resolves to text, piped to markdown
	DefaultFillValue = "0"
)
