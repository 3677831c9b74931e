// Package markup provides the HTML document tree that rules are evaluated
// against. It defines:
// - Document: the complete file representation with line metadata
// - Node: one element, text run, comment, or doctype in the parsed tree
// - Walk helpers for pre-order traversal
//
// Trees are produced by a parser (see pkg/parser/nethtml) and are never
// mutated during analysis.
package markup

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=NodeType -trimprefix=Node

// NodeType classifies the type of a tree node.
type NodeType uint8

// Node types. Elements are the only nodes rules match against; the other
// kinds exist so text content and emptiness checks see the full document.
const (
	NodeDocument NodeType = iota
	NodeElement
	NodeText
	NodeComment
	NodeDoctype
)

// Attribute is a single name/value pair on an element.
// Names are stored lowercased; values keep their original case.
type Attribute struct {
	Name  string
	Value string
}

// Node represents a single node in the document tree.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Type identifies what kind of node this is.
	Type NodeType

	// Tag is the lowercased element name for NodeElement, empty otherwise.
	Tag string

	// Data holds the text for NodeText and NodeComment nodes.
	Data string

	// Attrs holds the element's attributes. Names are unique (the parser
	// keeps the first occurrence, matching browser behavior).
	Attrs []Attribute

	// Tree structure pointers. Parent is a back-reference only; the tree
	// is owned by the Document.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Byte range in the source covering the opening tag (or the text run).
	// Both are 0 for synthetic nodes.
	StartOffset int
	EndOffset   int

	// File is a back-reference to the containing Document.
	File *Document
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool {
	return n.Type == NodeElement
}

// Attr returns the value of the named attribute and whether it is present.
// Lookup is case-insensitive per HTML attribute semantics.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr returns true if the named attribute is present, regardless of value.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// AppendChild attaches child as the last child of n.
// The child must be detached (no parent).
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.Prev = n.LastChild
	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	var sb strings.Builder
	//nolint:errcheck // Walk only returns nil errors in this usage
	Walk(n, func(node *Node) error {
		if node.Type == NodeText {
			sb.WriteString(node.Data)
		}
		return nil
	})
	return sb.String()
}

// IsWhitespaceOnly returns true if the node has no element children and its
// text content is empty or whitespace.
func (n *Node) IsWhitespaceOnly() bool {
	for child := n.FirstChild; child != nil; child = child.Next {
		switch child.Type {
		case NodeElement:
			return false
		case NodeText:
			if strings.TrimSpace(child.Data) != "" {
				return false
			}
		}
	}
	return true
}

// Path returns a CSS-like location path for the node, for presentation.
// Example: "html > body > ul > li:nth-of-type(2)".
func (n *Node) Path() string {
	if n == nil || n.Type != NodeElement {
		return ""
	}

	var parts []string
	for cur := n; cur != nil && cur.Type == NodeElement; cur = cur.Parent {
		parts = append(parts, cur.pathSegment())
	}

	// Reverse into document order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, " > ")
}

// pathSegment renders one path component, adding :nth-of-type when the node
// has same-tag siblings.
func (n *Node) pathSegment() string {
	position := 1
	for sib := n.Prev; sib != nil; sib = sib.Prev {
		if sib.Type == NodeElement && sib.Tag == n.Tag {
			position++
		}
	}
	if position > 1 {
		return fmt.Sprintf("%s:nth-of-type(%d)", n.Tag, position)
	}
	for sib := n.Next; sib != nil; sib = sib.Next {
		if sib.Type == NodeElement && sib.Tag == n.Tag {
			return n.Tag + ":nth-of-type(1)"
		}
	}
	return n.Tag
}
