package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_IsValid(t *testing.T) {
	assert.True(t, SeverityError.IsValid())
	assert.True(t, SeverityWarning.IsValid())
	assert.False(t, Severity("info").IsValid())
	assert.False(t, Severity("").IsValid())
}

func TestSeverity_MoreSevereThan(t *testing.T) {
	assert.True(t, SeverityError.MoreSevereThan(SeverityWarning))
	assert.False(t, SeverityWarning.MoreSevereThan(SeverityError))
	assert.False(t, SeverityError.MoreSevereThan(SeverityError))
}

func TestOutputFormat_IsValid(t *testing.T) {
	for _, f := range []OutputFormat{FormatText, FormatJSON, FormatSARIF, FormatSummary} {
		assert.True(t, f.IsValid(), string(f))
	}
	assert.False(t, OutputFormat("xml").IsValid())
}

func TestConfig_RuleEnabled(t *testing.T) {
	disabled := false

	tests := []struct {
		name           string
		cfg            *Config
		defaultEnabled bool
		want           bool
	}{
		{"default on", NewConfig(), true, true},
		{"default off", NewConfig(), false, false},
		{
			"file config disables",
			&Config{Rules: map[string]RuleConfig{"inline-style": {Enabled: &disabled}}},
			true,
			false,
		},
		{
			"cli enable wins over file config",
			&Config{
				Rules:       map[string]RuleConfig{"inline-style": {Enabled: &disabled}},
				EnableRules: []string{"inline-style"},
			},
			true,
			true,
		},
		{
			"cli disable wins over cli enable",
			&Config{
				EnableRules:  []string{"inline-style"},
				DisableRules: []string{"inline-style"},
			},
			true,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.RuleEnabled("inline-style", tt.defaultEnabled))
		})
	}
}

func TestConfig_RuleSeverity(t *testing.T) {
	warn := "warning"
	bogus := "fatal"

	cfg := &Config{Rules: map[string]RuleConfig{
		"deprecated-element": {Severity: &warn},
		"img-missing-alt":    {Severity: &bogus},
	}}

	assert.Equal(t, SeverityWarning, cfg.RuleSeverity("deprecated-element", SeverityError))
	// Invalid override falls back to the rule default.
	assert.Equal(t, SeverityError, cfg.RuleSeverity("img-missing-alt", SeverityError))
	assert.Equal(t, SeverityError, cfg.RuleSeverity("unknown", SeverityError))
}

func TestFromYAML_RoundTrip(t *testing.T) {
	in := `
rules:
  inline-style:
    enabled: false
  link-target:
    severity: error
ignore:
  - vendor/**
extensions:
  - .html
max_nodes: 50000
`
	cfg, err := FromYAML([]byte(in))
	require.NoError(t, err)

	assert.False(t, cfg.RuleEnabled("inline-style", true))
	assert.Equal(t, SeverityError, cfg.RuleSeverity("link-target", SeverityWarning))
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
	assert.Equal(t, 50000, cfg.MaxNodes)

	out, err := cfg.ToYAML()
	require.NoError(t, err)

	again, err := FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Ignore, again.Ignore)
	assert.Equal(t, cfg.MaxNodes, again.MaxNodes)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("rules: ["))
	assert.Error(t, err)
}

func TestConfig_Clone(t *testing.T) {
	enabled := true
	cfg := NewConfig()
	cfg.Rules["empty-element"] = RuleConfig{Enabled: &enabled}
	cfg.Ignore = []string{"dist/**"}
	cfg.Jobs = 4

	clone := cfg.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, cfg.Jobs, clone.Jobs)
	assert.Equal(t, cfg.Ignore, clone.Ignore)

	// Mutating the clone must not affect the original.
	*clone.Rules["empty-element"].Enabled = false
	assert.True(t, *cfg.Rules["empty-element"].Enabled)

	clone.Ignore[0] = "changed"
	assert.Equal(t, "dist/**", cfg.Ignore[0])
}
