package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

func TestBuiltin_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for _, rule := range Builtin() {
		_, dup := seen[rule.ID]
		assert.False(t, dup, "duplicate rule ID %q", rule.ID)
		seen[rule.ID] = struct{}{}
	}
}

func TestBuiltin_WellFormed(t *testing.T) {
	for _, rule := range Builtin() {
		assert.NotEmpty(t, rule.ID)
		assert.NotEmpty(t, rule.Description, "rule %s", rule.ID)
		assert.NotEmpty(t, rule.Message, "rule %s", rule.ID)
		assert.True(t, rule.Severity.IsValid(), "rule %s", rule.ID)
		assert.NotNil(t, rule.Predicate, "rule %s", rule.ID)
		assert.True(t, rule.Enabled, "catalog rules are enabled by default: %s", rule.ID)
	}
}

func TestBuiltin_CatalogShape(t *testing.T) {
	var eventRules int
	for _, rule := range Builtin() {
		if len(rule.ID) > len("inline-event-") && rule.ID[:len("inline-event-")] == "inline-event-" {
			eventRules++
		}
	}
	assert.Equal(t, len(eventAttributes), eventRules)
	assert.Equal(t, 55, len(eventAttributes))
	assert.Equal(t, 24, len(deprecatedTags))
}

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	require.NoError(t, RegisterAll(registry))
	assert.Equal(t, len(Builtin()), registry.Len())

	// Registering twice collides on every ID.
	err := RegisterAll(registry)
	var dup *lint.DuplicateRuleError
	assert.ErrorAs(t, err, &dup)
}

func TestBuiltin_SeveritiesMatchCatalog(t *testing.T) {
	registry := lint.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	wantError := []string{
		"inline-event-onclick",
		"link-missing-href",
		"img-missing-alt",
		"input-missing-type",
		"textarea-missing-rowscols",
		"control-missing-name",
		"submit-missing-value",
		"deprecated-element",
	}
	for _, id := range wantError {
		rule, ok := registry.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, config.SeverityError, rule.Severity, id)
	}

	wantWarning := []string{
		"inline-style",
		"link-questionable-href",
		"link-target",
		"empty-element",
		"img-missing-dimensions",
		"label-missing-for",
	}
	for _, id := range wantWarning {
		rule, ok := registry.Get(id)
		require.True(t, ok, id)
		assert.Equal(t, config.SeverityWarning, rule.Severity, id)
	}
}
