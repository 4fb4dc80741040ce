package domain

import "fmt"

// OutputFormat selects how the CLI prints results.
type OutputFormat string

const (
	OutputAuto OutputFormat = "auto"
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// ValidOutputFormats enumerates all recognized output formats.
var ValidOutputFormats = []OutputFormat{OutputAuto, OutputText, OutputJSON}

// ValidLogLevels enumerates all recognized log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats enumerates all recognized log formats.
var ValidLogFormats = []string{"text", "json"}

// Config holds tool configuration loaded from .bleready.yaml.
// Scoring thresholds are deliberately absent: verdicts must not depend on local settings.
type Config struct {
	Output      OutputFormat   `yaml:"output"       json:"output,omitempty"`
	FailOn      Recommendation `yaml:"fail_on"      json:"fail_on,omitempty"`
	LogLevel    string         `yaml:"log_level"    json:"log_level,omitempty"`
	LogFormat   string         `yaml:"log_format"   json:"log_format,omitempty"`
	StampCommit bool           `yaml:"stamp_commit" json:"stamp_commit,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Output:    OutputAuto,
		FailOn:    RecommendNoGo,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.FailOn == "" {
		c.FailOn = d.FailOn
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. output must be known or empty
	if c.Output != "" && !contains(ValidOutputFormats, c.Output) {
		return fmt.Errorf("unknown output %q (valid: auto, text, json)", c.Output)
	}

	// 2. fail_on must be a verdict that can gate a pipeline
	if c.FailOn != "" && c.FailOn != RecommendNoGo && c.FailOn != RecommendConditionalGo {
		return fmt.Errorf("unknown fail_on %q (valid: NO_GO, CONDITIONAL_GO)", c.FailOn)
	}

	// 3. log settings
	if c.LogLevel != "" && !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.LogFormat != "" && !contains(ValidLogFormats, c.LogFormat) {
		return fmt.Errorf("unknown log_format %q (valid: text, json)", c.LogFormat)
	}

	return nil
}

// Fails reports whether a verdict should fail a CI run under this config.
func (c Config) Fails(r Recommendation) bool {
	failOn := c.FailOn
	if failOn == "" {
		failOn = RecommendNoGo
	}
	return r.Rank() <= failOn.Rank()
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
