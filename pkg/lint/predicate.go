package lint

import (
	"fmt"
	"strings"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// Predicate is a boolean-valued structural test over one markup node.
// Implementations must be deterministic and side-effect free: matching never
// mutates the node or the tree, and matching the same node twice yields the
// same result.
type Predicate interface {
	Match(n *markup.Node) bool
	String() string
}

// HasAttribute matches nodes that carry the named attribute, regardless of
// its value. An attribute present with an empty value still matches.
func HasAttribute(name string) Predicate {
	return hasAttribute{name: strings.ToLower(name)}
}

type hasAttribute struct {
	name string
}

func (p hasAttribute) Match(n *markup.Node) bool {
	return n.HasAttr(p.name)
}

func (p hasAttribute) String() string {
	return fmt.Sprintf("[%s]", p.name)
}

// AttributeEquals matches nodes whose named attribute is present and equals
// value exactly. Values are compared case-sensitively.
func AttributeEquals(name, value string) Predicate {
	return attributeEquals{name: strings.ToLower(name), value: value}
}

type attributeEquals struct {
	name  string
	value string
}

func (p attributeEquals) Match(n *markup.Node) bool {
	v, ok := n.Attr(p.name)
	return ok && v == p.value
}

func (p attributeEquals) String() string {
	return fmt.Sprintf("[%s=%q]", p.name, p.value)
}

// AttributeStartsWith matches nodes whose named attribute is present and has
// prefix as a literal prefix.
func AttributeStartsWith(name, prefix string) Predicate {
	return attributeStartsWith{name: strings.ToLower(name), prefix: prefix}
}

type attributeStartsWith struct {
	name   string
	prefix string
}

func (p attributeStartsWith) Match(n *markup.Node) bool {
	v, ok := n.Attr(p.name)
	return ok && strings.HasPrefix(v, p.prefix)
}

func (p attributeStartsWith) String() string {
	return fmt.Sprintf("[%s^=%q]", p.name, p.prefix)
}

// TagIn matches element nodes whose tag name is a member of the given set.
// Matching is case-insensitive.
func TagIn(tags ...string) Predicate {
	set := make(map[string]struct{}, len(tags))
	list := make([]string, 0, len(tags))
	for _, t := range tags {
		lower := strings.ToLower(t)
		if _, ok := set[lower]; ok {
			continue
		}
		set[lower] = struct{}{}
		list = append(list, lower)
	}
	return tagIn{set: set, list: list}
}

type tagIn struct {
	set  map[string]struct{}
	list []string
}

func (p tagIn) Match(n *markup.Node) bool {
	if n.Type != markup.NodeElement {
		return false
	}
	_, ok := p.set[strings.ToLower(n.Tag)]
	return ok
}

func (p tagIn) String() string {
	return strings.Join(p.list, "|")
}

// IsEmpty matches nodes with no element children and no non-whitespace text
// content. Comments do not count as content.
func IsEmpty() Predicate {
	return isEmpty{}
}

type isEmpty struct{}

func (isEmpty) Match(n *markup.Node) bool {
	return n.IsWhitespaceOnly()
}

func (isEmpty) String() string {
	return ":empty"
}

// Not inverts the given predicate.
func Not(p Predicate) Predicate {
	return notPredicate{inner: p}
}

type notPredicate struct {
	inner Predicate
}

func (p notPredicate) Match(n *markup.Node) bool {
	return !p.inner.Match(n)
}

func (p notPredicate) String() string {
	return fmt.Sprintf(":not(%s)", p.inner)
}

// And matches when every given predicate matches. Evaluation short-circuits
// on the first non-match. And() with no arguments always matches.
func And(ps ...Predicate) Predicate {
	return andPredicate{parts: ps}
}

type andPredicate struct {
	parts []Predicate
}

func (p andPredicate) Match(n *markup.Node) bool {
	for _, part := range p.parts {
		if !part.Match(n) {
			return false
		}
	}
	return true
}

func (p andPredicate) String() string {
	return joinParts(p.parts, "")
}

// Or matches when any given predicate matches. Evaluation short-circuits on
// the first match. Or() with no arguments never matches.
func Or(ps ...Predicate) Predicate {
	return orPredicate{parts: ps}
}

type orPredicate struct {
	parts []Predicate
}

func (p orPredicate) Match(n *markup.Node) bool {
	for _, part := range p.parts {
		if part.Match(n) {
			return true
		}
	}
	return false
}

func (p orPredicate) String() string {
	return joinParts(p.parts, ", ")
}

func joinParts(ps []Predicate, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}
