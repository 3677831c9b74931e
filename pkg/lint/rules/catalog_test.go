package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
	"github.com/davgit/diagnosticss/pkg/markup"
)

func elem(tag string, attrs ...markup.Attribute) *markup.Node {
	return &markup.Node{Type: markup.NodeElement, Tag: tag, Attrs: attrs}
}

func attr(name, value string) markup.Attribute {
	return markup.Attribute{Name: name, Value: value}
}

func withText(n *markup.Node, s string) *markup.Node {
	n.AppendChild(&markup.Node{Type: markup.NodeText, Data: s})
	return n
}

// analyzeNode runs the full catalog against a single detached node.
func analyzeNode(t *testing.T, n *markup.Node) []lint.Diagnostic {
	t.Helper()

	registry := lint.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	root := &markup.Node{Type: markup.NodeDocument}
	root.AppendChild(n)
	doc := markup.NewDocument("test.html", nil)
	doc.Root = root

	diags, err := lint.Analyze(context.Background(), doc, registry, lint.Options{})
	require.NoError(t, err)
	return diags
}

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, len(diags))
	for i, d := range diags {
		ids[i] = d.RuleID
	}
	return ids
}

func TestScenario_LinkWithoutHref(t *testing.T) {
	diags := analyzeNode(t, withText(elem("a"), "text"))

	require.Len(t, diags, 1)
	assert.Equal(t, "link-missing-href", diags[0].RuleID)
	assert.Equal(t, config.SeverityError, diags[0].Severity)
}

func TestScenario_ImageWithoutAltOrDimensions(t *testing.T) {
	diags := analyzeNode(t, elem("img", attr("src", "x.png")))

	require.Len(t, diags, 2)
	// Catalog order: media rules register alt before dimensions.
	assert.Equal(t, []string{"img-missing-alt", "img-missing-dimensions"}, ruleIDs(diags))
	assert.Equal(t, config.SeverityError, diags[0].Severity)
	assert.Equal(t, config.SeverityWarning, diags[1].Severity)
	assert.Contains(t, diags[0].Message, `"x.png"`)
}

func TestScenario_BareSubmitInput(t *testing.T) {
	diags := analyzeNode(t, elem("input", attr("type", "submit")))

	require.Len(t, diags, 2, "both findings fire; deduplication is caller policy")
	assert.Equal(t, []string{"control-missing-name", "submit-missing-value"}, ruleIDs(diags))
	for _, d := range diags {
		assert.Equal(t, config.SeverityError, d.Severity)
	}
}

func TestScenario_EmptyListItem(t *testing.T) {
	diags := analyzeNode(t, elem("li"))

	require.Len(t, diags, 1)
	assert.Equal(t, "empty-element", diags[0].RuleID)
	assert.Equal(t, config.SeverityWarning, diags[0].Severity)
}

func TestScenario_LabelWithEmptyFor(t *testing.T) {
	diags := analyzeNode(t, withText(elem("label", attr("for", "")), "x"))

	require.Len(t, diags, 1)
	assert.Equal(t, "label-missing-for", diags[0].RuleID)
	assert.Equal(t, config.SeverityWarning, diags[0].Severity)
}

func TestCatalog_CleanNodesProduceNothing(t *testing.T) {
	clean := []*markup.Node{
		withText(elem("a", attr("href", "/about")), "about"),
		elem("img", attr("src", "x.png"), attr("alt", "desc"), attr("width", "10"), attr("height", "10")),
		elem("input", attr("type", "text"), attr("name", "q")),
		withText(elem("li"), "item"),
		withText(elem("label", attr("for", "q")), "Query"),
		withText(elem("p"), "body text"),
	}

	for _, n := range clean {
		assert.Empty(t, analyzeNode(t, n), "tag %s", n.Tag)
	}
}

func TestCatalog_InlineStyleAndEvents(t *testing.T) {
	diags := analyzeNode(t, withText(elem("p",
		attr("style", "color:red"),
		attr("onclick", "doThing()"),
	), "x"))

	assert.Equal(t, []string{"inline-style", "inline-event-onclick"}, ruleIDs(diags))
}

func TestCatalog_QuestionableHrefs(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"#", true},
		{"javascript:void(0)", true},
		{"#section", false},
		{"/about", false},
	}

	for _, tt := range tests {
		diags := analyzeNode(t, withText(elem("a", attr("href", tt.href)), "x"))
		if tt.want {
			require.Len(t, diags, 1, "href %q", tt.href)
			assert.Equal(t, "link-questionable-href", diags[0].RuleID)
			assert.Contains(t, diags[0].Message, tt.href)
		} else {
			assert.Empty(t, diags, "href %q", tt.href)
		}
	}
}

func TestCatalog_DeprecatedElement(t *testing.T) {
	for _, tag := range []string{"marquee", "blink", "center", "font"} {
		diags := analyzeNode(t, withText(elem(tag), "x"))
		require.Len(t, diags, 1, "tag %s", tag)
		assert.Equal(t, "deprecated-element", diags[0].RuleID)
		assert.Contains(t, diags[0].Message, "<"+tag+">")
	}
}

func TestCatalog_TextareaAndInputType(t *testing.T) {
	diags := analyzeNode(t, elem("textarea", attr("name", "bio")))
	assert.Equal(t, []string{"textarea-missing-rowscols"}, ruleIDs(diags))

	diags = analyzeNode(t, elem("input", attr("name", "q")))
	assert.Equal(t, []string{"input-missing-type"}, ruleIDs(diags))
}

func TestCatalog_LinkTargetOnAnyElement(t *testing.T) {
	diags := analyzeNode(t, withText(elem("a", attr("href", "/x"), attr("target", "_blank")), "x"))
	assert.Equal(t, []string{"link-target"}, ruleIDs(diags))
}
