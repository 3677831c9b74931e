// Package nethtml provides a lint.Parser implementation built on the
// golang.org/x/net/html tokenizer.
//
// The tokenizer is used directly instead of html.Parse so that every node
// keeps its byte offsets in the source: html.Parse normalizes the document
// (inserting html/head/body, reparenting stray content) and discards
// positions, which a linter needs for reporting. Tree construction here is
// deliberately lenient: unknown end tags are ignored, unclosed elements are
// closed at end of input, and common implied end tags (li, p, td, tr, ...)
// are honored.
package nethtml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// cancelCheckInterval is the token count between context checks.
const cancelCheckInterval = 512

// voidElements never take children or end tags.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

// impliedEndTags maps an opening tag to the set of open tags it implicitly
// closes, per the HTML parsing rules a browser applies.
var impliedEndTags = map[string][]string{
	"li":     {"li", "p"},
	"p":      {"p"},
	"td":     {"td", "th", "p"},
	"th":     {"td", "th", "p"},
	"tr":     {"tr", "td", "th"},
	"dd":     {"dd", "dt", "p"},
	"dt":     {"dd", "dt", "p"},
	"option": {"option"},
}

// Parser implements lint.Parser using the x/net/html tokenizer.
type Parser struct{}

// New creates a new HTML parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw HTML bytes into a fully-populated markup.Document.
// It never fails on malformed markup; only a cancelled context or an
// underlying read error aborts parsing.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*markup.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := markup.NewDocument(path, copyContent(content))

	b := &treeBuilder{
		root: &markup.Node{Type: markup.NodeDocument},
	}
	b.stack = append(b.stack, b.root)

	z := html.NewTokenizer(bytes.NewReader(doc.Content))
	offset := 0

	for i := 0; ; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("parse cancelled: %w", err)
			}
		}

		tt := z.Next()
		rawLen := len(z.Raw())

		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return nil, fmt.Errorf("tokenize %s: %w", path, z.Err())
		}

		b.handleToken(z.Token(), tt, offset, offset+rawLen)
		offset += rawLen
	}

	markup.SetFile(b.root, doc)
	doc.Root = b.root
	return doc, nil
}

// treeBuilder assembles the node tree from the token stream. The stack holds
// the chain of open elements; the document node sits at the bottom and is
// never popped.
type treeBuilder struct {
	root  *markup.Node
	stack []*markup.Node
}

func (b *treeBuilder) top() *markup.Node {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) handleToken(tok html.Token, tt html.TokenType, start, end int) {
	switch tt {
	case html.StartTagToken:
		b.openElement(tok, start, end, true)
	case html.SelfClosingTagToken:
		b.openElement(tok, start, end, false)
	case html.EndTagToken:
		b.closeElement(tok.Data)
	case html.TextToken:
		b.appendLeaf(&markup.Node{
			Type:        markup.NodeText,
			Data:        tok.Data,
			StartOffset: start,
			EndOffset:   end,
		})
	case html.CommentToken:
		b.appendLeaf(&markup.Node{
			Type:        markup.NodeComment,
			Data:        tok.Data,
			StartOffset: start,
			EndOffset:   end,
		})
	case html.DoctypeToken:
		b.appendLeaf(&markup.Node{
			Type:        markup.NodeDoctype,
			Data:        tok.Data,
			StartOffset: start,
			EndOffset:   end,
		})
	}
}

func (b *treeBuilder) openElement(tok html.Token, start, end int, push bool) {
	tag := strings.ToLower(tok.Data)

	if closes, ok := impliedEndTags[tag]; ok {
		b.popWhile(closes)
	}

	n := &markup.Node{
		Type:        markup.NodeElement,
		Tag:         tag,
		Attrs:       dedupeAttrs(tok.Attr),
		StartOffset: start,
		EndOffset:   end,
	}
	b.top().AppendChild(n)

	if _, void := voidElements[tag]; void || !push {
		return
	}
	b.stack = append(b.stack, n)
}

// closeElement pops to the nearest matching open element. An end tag with no
// matching open element is discarded.
func (b *treeBuilder) closeElement(tag string) {
	tag = strings.ToLower(tag)

	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].Tag == tag {
			b.stack = b.stack[:i]
			return
		}
	}
}

// popWhile pops open elements as long as the top's tag is in the given set.
func (b *treeBuilder) popWhile(tags []string) {
	for len(b.stack) > 1 {
		current := b.top().Tag
		matched := false
		for _, t := range tags {
			if current == t {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *treeBuilder) appendLeaf(n *markup.Node) {
	b.top().AppendChild(n)
}

// dedupeAttrs lowercases attribute names and keeps the first occurrence of
// each, matching browser behavior for repeated attributes.
func dedupeAttrs(attrs []html.Attribute) []markup.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(attrs))
	result := make([]markup.Attribute, 0, len(attrs))

	for _, a := range attrs {
		name := strings.ToLower(a.Key)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, markup.Attribute{Name: name, Value: a.Val})
	}

	return result
}

// copyContent returns a private copy so later mutation of the caller's
// buffer cannot skew offsets.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	dup := make([]byte, len(content))
	copy(dup, content)
	return dup
}
