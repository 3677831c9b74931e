package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davgit/diagnosticss/pkg/config"
)

func testRule(id string, p Predicate) Rule {
	return Rule{
		ID:        id,
		Severity:  config.SeverityWarning,
		Message:   "issue on {tag}",
		Enabled:   true,
		Predicate: p,
	}
}

func TestRegistry_Register_And_Get(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("inline-style", HasAttribute("style"))))

	got, ok := reg.Get("inline-style")
	assert.True(t, ok)
	assert.Equal(t, "inline-style", got.ID)

	_, ok = reg.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("inline-style", HasAttribute("style"))))

	err := reg.Register(testRule("inline-style", HasAttribute("style")))
	require.Error(t, err)

	var dup *DuplicateRuleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "inline-style", dup.ID)

	// The original registration is untouched.
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	ids := []string{"zeta", "alpha", "mid"}
	for _, id := range ids {
		require.NoError(t, reg.Register(testRule(id, TagIn("a"))))
	}

	assert.Equal(t, ids, reg.IDs(), "IDs follow registration order, not lexical order")
}

func TestRegistry_RulesFor_OrderAndFiltering(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("second-registered", HasAttribute("target"))))
	require.NoError(t, reg.Register(testRule("never-matches", TagIn("table"))))
	require.NoError(t, reg.Register(testRule("also-matches", TagIn("a"))))

	n := elem("a", attr("target", "_blank"))
	matched := reg.RulesFor(n)

	require.Len(t, matched, 2)
	assert.Equal(t, "second-registered", matched[0].ID)
	assert.Equal(t, "also-matches", matched[1].ID)
}

func TestRegistry_RulesFor_NoMutation(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(testRule("r", TagIn("a"))))

	n := elem("a")
	first := reg.RulesFor(n)
	second := reg.RulesFor(n)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_MustRegister_PanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(testRule("r", TagIn("a")))

	assert.Panics(t, func() {
		reg.MustRegister(testRule("r", TagIn("a")))
	})
}
