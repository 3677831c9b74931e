package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// elem builds a detached element node for tests.
func elem(tag string, attrs ...Attribute) *Node {
	return &Node{Type: NodeElement, Tag: tag, Attrs: attrs}
}

func text(s string) *Node {
	return &Node{Type: NodeText, Data: s}
}

func TestNode_Attr(t *testing.T) {
	n := elem("a", Attribute{Name: "href", Value: "https://example.com"})

	v, ok := n.Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", v)

	// Attribute lookup is case-insensitive.
	v, ok = n.Attr("HREF")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", v)

	_, ok = n.Attr("target")
	assert.False(t, ok)
}

func TestNode_Attr_EmptyValueIsPresent(t *testing.T) {
	n := elem("a", Attribute{Name: "href", Value: ""})

	v, ok := n.Attr("href")
	assert.True(t, ok, "present-but-empty is distinct from absent")
	assert.Equal(t, "", v)
	assert.True(t, n.HasAttr("href"))
}

func TestNode_AppendChild(t *testing.T) {
	parent := elem("ul")
	first := elem("li")
	second := elem("li")

	parent.AppendChild(first)
	parent.AppendChild(second)

	assert.Same(t, first, parent.FirstChild)
	assert.Same(t, second, parent.LastChild)
	assert.Same(t, second, first.Next)
	assert.Same(t, first, second.Prev)
	assert.Same(t, parent, first.Parent)
	assert.Same(t, parent, second.Parent)
	assert.Equal(t, 2, parent.ChildCount())
	assert.Len(t, parent.Children(), 2)
}

func TestNode_TextContent(t *testing.T) {
	p := elem("p")
	p.AppendChild(text("hello "))
	em := elem("em")
	em.AppendChild(text("world"))
	p.AppendChild(em)

	assert.Equal(t, "hello world", p.TextContent())
}

func TestNode_IsWhitespaceOnly(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Node
		want  bool
	}{
		{
			name:  "no children",
			build: func() *Node { return elem("li") },
			want:  true,
		},
		{
			name: "whitespace text only",
			build: func() *Node {
				n := elem("li")
				n.AppendChild(text("  \n\t"))
				return n
			},
			want: true,
		},
		{
			name: "real text",
			build: func() *Node {
				n := elem("li")
				n.AppendChild(text("item"))
				return n
			},
			want: false,
		},
		{
			name: "element child",
			build: func() *Node {
				n := elem("li")
				n.AppendChild(elem("span"))
				return n
			},
			want: false,
		},
		{
			name: "comment only",
			build: func() *Node {
				n := elem("td")
				n.AppendChild(&Node{Type: NodeComment, Data: "empty"})
				return n
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build().IsWhitespaceOnly())
		})
	}
}

func TestNode_Path(t *testing.T) {
	html := elem("html")
	body := elem("body")
	ul := elem("ul")
	li1 := elem("li")
	li2 := elem("li")

	html.AppendChild(body)
	body.AppendChild(ul)
	ul.AppendChild(li1)
	ul.AppendChild(li2)

	assert.Equal(t, "html > body > ul > li:nth-of-type(1)", li1.Path())
	assert.Equal(t, "html > body > ul > li:nth-of-type(2)", li2.Path())
	assert.Equal(t, "html > body > ul", ul.Path())
}

func TestNode_Path_NonElement(t *testing.T) {
	assert.Equal(t, "", text("x").Path())
	assert.Equal(t, "", (&Node{Type: NodeDocument}).Path())
}
