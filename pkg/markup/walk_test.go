package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree constructs:
//
//	document
//	└── html
//	    ├── head
//	    └── body
//	        ├── p (with text)
//	        └── ul
//	            ├── li
//	            └── li
func buildTree() *Node {
	doc := &Node{Type: NodeDocument}
	html := elem("html")
	head := elem("head")
	body := elem("body")
	p := elem("p")
	p.AppendChild(text("hi"))
	ul := elem("ul")
	ul.AppendChild(elem("li"))
	ul.AppendChild(elem("li"))

	doc.AppendChild(html)
	html.AppendChild(head)
	html.AppendChild(body)
	body.AppendChild(p)
	body.AppendChild(ul)

	return doc
}

func TestWalk_PreOrder(t *testing.T) {
	var visited []string
	err := Walk(buildTree(), func(n *Node) error {
		if n.Type == NodeElement {
			visited = append(visited, n.Tag)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"html", "head", "body", "p", "ul", "li", "li"}, visited)
}

func TestWalk_VisitsEveryNodeOnce(t *testing.T) {
	root := buildTree()

	seen := make(map[*Node]int)
	err := Walk(root, func(n *Node) error {
		seen[n]++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, CountNodes(root), len(seen))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	sentinel := errors.New("stop here")
	var visited int

	err := Walk(buildTree(), func(n *Node) error {
		visited++
		if n.Tag == "body" {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 4, visited, "document, html, head, body")
}

func TestWalk_NilRoot(t *testing.T) {
	assert.NoError(t, Walk(nil, func(*Node) error { return errors.New("never") }))
}

func TestWalkElements_SkipsNonElements(t *testing.T) {
	var count int
	err := WalkElements(buildTree(), func(n *Node) error {
		assert.Equal(t, NodeElement, n.Type)
		count++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestFindByTag(t *testing.T) {
	items := FindByTag(buildTree(), "li")
	assert.Len(t, items, 2)
}

func TestFindFirst(t *testing.T) {
	found := FindFirst(buildTree(), func(n *Node) bool { return n.Tag == "ul" })
	require.NotNil(t, found)
	assert.Equal(t, "ul", found.Tag)

	assert.Nil(t, FindFirst(buildTree(), func(n *Node) bool { return n.Tag == "table" }))
}
