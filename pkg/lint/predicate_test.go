package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// elem builds a detached element node for tests.
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

func TestHasAttribute(t *testing.T) {
	p := HasAttribute("style")

	assert.True(t, p.Match(elem("div", attr("style", "color:red"))))
	assert.True(t, p.Match(elem("div", attr("style", ""))), "empty value still counts as present")
	assert.False(t, p.Match(elem("div")))
}

func TestAttributeEquals(t *testing.T) {
	tests := []struct {
		name string
		node *markup.Node
		want bool
	}{
		{"exact match", elem("a", attr("href", "#")), true},
		{"no match", elem("a", attr("href", "#top")), false},
		{"absent", elem("a"), false},
		{"empty equals empty", elem("a", attr("href", "")), false},
	}

	p := AttributeEquals("href", "#")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Match(tt.node))
		})
	}

	// Values compare case-sensitively.
	assert.False(t, AttributeEquals("type", "submit").Match(elem("input", attr("type", "Submit"))))
}

func TestAttributeEquals_EmptyValue(t *testing.T) {
	p := AttributeEquals("href", "")

	assert.True(t, p.Match(elem("a", attr("href", ""))))
	assert.False(t, p.Match(elem("a")), "absent is not present-but-empty")
}

func TestAttributeStartsWith(t *testing.T) {
	p := AttributeStartsWith("href", "javascript")

	assert.True(t, p.Match(elem("a", attr("href", "javascript:void(0)"))))
	assert.True(t, p.Match(elem("a", attr("href", "javascript"))))
	assert.False(t, p.Match(elem("a", attr("href", "https://example.com"))))
	assert.False(t, p.Match(elem("a")))
}

func TestTagIn(t *testing.T) {
	p := TagIn("li", "p", "td", "th")

	assert.True(t, p.Match(elem("li")))
	assert.True(t, p.Match(elem("TD")), "tag matching is case-insensitive")
	assert.False(t, p.Match(elem("div")))
	assert.False(t, p.Match(&markup.Node{Type: markup.NodeText, Data: "li"}))
}

func TestIsEmpty(t *testing.T) {
	p := IsEmpty()

	assert.True(t, p.Match(elem("li")))
	assert.True(t, p.Match(withText(elem("li"), "   \n")))
	assert.False(t, p.Match(withText(elem("li"), "item")))

	parent := elem("li")
	parent.AppendChild(elem("span"))
	assert.False(t, p.Match(parent))
}

func TestCombinators(t *testing.T) {
	img := elem("img", attr("src", "x.png"))
	imgWithAlt := elem("img", attr("src", "x.png"), attr("alt", "desc"))

	missingAlt := And(TagIn("img"), Not(HasAttribute("alt")))
	assert.True(t, missingAlt.Match(img))
	assert.False(t, missingAlt.Match(imgWithAlt))

	badHref := Or(Not(HasAttribute("href")), AttributeEquals("href", ""))
	assert.True(t, badHref.Match(elem("a")))
	assert.True(t, badHref.Match(elem("a", attr("href", ""))))
	assert.False(t, badHref.Match(elem("a", attr("href", "/about"))))
}

func TestCombinators_Nested(t *testing.T) {
	// input[type=submit] missing both name and value.
	p := And(
		TagIn("input"),
		AttributeEquals("type", "submit"),
		Or(
			And(Not(HasAttribute("name")), Not(HasAttribute("value"))),
			AttributeEquals("name", ""),
		),
	)

	assert.True(t, p.Match(elem("input", attr("type", "submit"))))
	assert.False(t, p.Match(elem("input", attr("type", "submit"), attr("name", "go"), attr("value", "Go"))))
	assert.True(t, p.Match(elem("input", attr("type", "submit"), attr("name", ""))))
}

func TestCombinators_Empty(t *testing.T) {
	n := elem("div")
	assert.True(t, And().Match(n))
	assert.False(t, Or().Match(n))
}

func TestPredicate_Idempotent(t *testing.T) {
	n := elem("a", attr("href", ""), attr("target", "_blank"))

	predicates := []Predicate{
		HasAttribute("target"),
		AttributeEquals("href", ""),
		AttributeStartsWith("href", "#"),
		TagIn("a"),
		IsEmpty(),
		And(TagIn("a"), HasAttribute("target")),
		Or(Not(HasAttribute("href")), AttributeEquals("href", "")),
	}

	for _, p := range predicates {
		first := p.Match(n)
		second := p.Match(n)
		assert.Equal(t, first, second, "predicate %s must be idempotent", p)
	}
}

func TestPredicate_String(t *testing.T) {
	assert.Equal(t, "[style]", HasAttribute("style").String())
	assert.Equal(t, `[href=""]`, AttributeEquals("href", "").String())
	assert.Equal(t, `[href^="javascript"]`, AttributeStartsWith("href", "javascript").String())
	assert.Equal(t, "li|p", TagIn("li", "p").String())
	assert.Equal(t, ":empty", IsEmpty().String())
	assert.Equal(t, ":not([alt])", Not(HasAttribute("alt")).String())
}
