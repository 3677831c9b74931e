package lint

import (
	"context"
	"fmt"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// Parser converts raw HTML bytes into a markup.Document.
// Implementations live outside this package (see pkg/parser/nethtml).
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*markup.Document, error)
}

// Options bound a single Analyze call. Zero values mean unlimited.
// The budgets guard against pathological inputs; they are not needed for
// correctness on well-formed trees.
type Options struct {
	// MaxDepth aborts the analysis when the tree nests deeper than this.
	MaxDepth int

	// MaxNodes aborts the analysis after visiting this many nodes.
	MaxNodes int
}

// FileResult contains the results of analyzing a single file.
type FileResult struct {
	// Doc is the parsed document.
	Doc *markup.Document

	// Diagnostics contains all findings, in document pre-order; findings on
	// the same node appear in rule registration order.
	Diagnostics []Diagnostic
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// Engine coordinates parsing and rule evaluation.
type Engine struct {
	// Parser parses HTML files into Documents.
	Parser Parser

	// Registry holds the rules to evaluate.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and analyzes a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	opts Options,
) (*FileResult, error) {
	doc, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	diags, err := Analyze(ctx, doc, e.Registry, opts)
	if err != nil {
		return nil, err
	}

	return &FileResult{Doc: doc, Diagnostics: diags}, nil
}

// Analyze walks the document tree in depth-first pre-order, visiting every
// node exactly once, and emits one Diagnostic per matching rule per node.
// Only element nodes are matched against rules; text, comment, and doctype
// nodes are visited but never match.
//
// The output order is the sole ordering contract: diagnostics across nodes
// appear in document pre-order, and diagnostics for one node appear in rule
// registration order. Running Analyze twice over the same tree and registry
// yields an identical sequence.
//
// Analyze returns a *MalformedTreeError if it detects a cycle or exceeds a
// configured budget, and the context error if cancelled. An aborted run
// never corrupts the registry for subsequent calls.
func Analyze(
	ctx context.Context,
	doc *markup.Document,
	registry *Registry,
	opts Options,
) ([]Diagnostic, error) {
	if doc == nil || doc.Root == nil {
		return nil, nil
	}

	w := &walker{
		ctx:      ctx,
		registry: registry,
		opts:     opts,
		filePath: doc.Path,
		visited:  make(map[*markup.Node]struct{}),
	}

	if err := w.walk(doc.Root, 0); err != nil {
		return nil, err
	}

	return w.diags, nil
}

// walker carries the per-call traversal state. It is the diagnostic
// collector from the engine's point of view: an append-only sequence with
// no deduplication, since a node with several independent problems should
// yield several findings.
type walker struct {
	ctx      context.Context
	registry *Registry
	opts     Options
	filePath string

	visited map[*markup.Node]struct{}
	count   int
	diags   []Diagnostic
}

func (w *walker) walk(n *markup.Node, depth int) error {
	if err := w.ctx.Err(); err != nil {
		return fmt.Errorf("analysis cancelled: %w", err)
	}

	if _, seen := w.visited[n]; seen {
		return &MalformedTreeError{Reason: "cycle detected", NodePath: n.Path()}
	}
	w.visited[n] = struct{}{}

	w.count++
	if w.opts.MaxNodes > 0 && w.count > w.opts.MaxNodes {
		return &MalformedTreeError{
			Reason: fmt.Sprintf("node budget of %d exceeded", w.opts.MaxNodes),
		}
	}
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return &MalformedTreeError{
			Reason:   fmt.Sprintf("depth budget of %d exceeded", w.opts.MaxDepth),
			NodePath: n.Path(),
		}
	}

	if n.Type == markup.NodeElement {
		for _, rule := range w.registry.RulesFor(n) {
			w.diags = append(w.diags, newDiagnostic(rule, n, w.filePath))
		}
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		if err := w.walk(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
