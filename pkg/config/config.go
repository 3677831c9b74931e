// Package config defines core configuration types for diagnosticss.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a diagnostic.
// Diagnostics are informational findings; neither level aborts an analysis.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// MoreSevereThan reports whether s outranks other. Error outranks warning.
func (s Severity) MoreSevereThan(other Severity) bool {
	return s == SeverityError && other == SeverityWarning
}

// RuleConfig holds per-rule configuration overrides.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled"`
	Severity *string `yaml:"severity"`
}

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for diagnosticss.
type Config struct {
	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Extensions lists file extensions treated as HTML (with leading dot).
	Extensions []string `yaml:"extensions"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// Strict makes warnings count toward a non-zero exit code.
	Strict bool `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// MaxDepth bounds tree depth during analysis. Zero means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// MaxNodes bounds the node count during analysis. Zero means unlimited.
	MaxNodes int `yaml:"max_nodes"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:      make(map[string]RuleConfig),
		Ignore:     nil,
		Extensions: []string{".html", ".htm", ".xhtml"},
		Format:     FormatText,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// RuleEnabled reports whether the given rule ID should run, starting from the
// catalog default and applying file config, then CLI enable/disable lists.
func (c *Config) RuleEnabled(id string, defaultEnabled bool) bool {
	enabled := defaultEnabled

	if rc, ok := c.Rules[id]; ok && rc.Enabled != nil {
		enabled = *rc.Enabled
	}

	for _, e := range c.EnableRules {
		if e == id {
			enabled = true
		}
	}
	for _, d := range c.DisableRules {
		if d == id {
			enabled = false
		}
	}

	return enabled
}

// RuleSeverity resolves the severity for the given rule ID, falling back to
// the rule's own severity when no valid override exists.
func (c *Config) RuleSeverity(id string, fallback Severity) Severity {
	if rc, ok := c.Rules[id]; ok && rc.Severity != nil {
		if s := Severity(*rc.Severity); s.IsValid() {
			return s
		}
	}
	return fallback
}
