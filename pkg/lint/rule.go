// Package lint provides the rule engine, registry, and diagnostics for
// diagnosticss. Rules pair a structural predicate with a severity and a
// message template; the engine walks a markup tree and emits one diagnostic
// per rule match.
package lint

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/markup"
)

// Rule is a named diagnostic check. Rules are plain values and are treated
// as immutable once registered.
type Rule struct {
	// ID is the unique identifier (e.g., "link-missing-href").
	ID string

	// Description explains what the rule checks, for the rules listing.
	Description string

	// Severity classifies findings from this rule.
	Severity config.Severity

	// Message is the diagnostic message template. It may reference the
	// matched node's attribute values as {name} and the tag name as {tag};
	// placeholders for absent attributes render as empty strings.
	Message string

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string

	// Tags categorize the rule (e.g., ["links"], ["forms"]).
	Tags []string

	// Enabled is the catalog default; configuration may override it.
	Enabled bool

	// Predicate decides whether the rule applies to a node.
	Predicate Predicate
}

// Matches reports whether the rule's predicate matches the node.
// A rule without a predicate never matches.
func (r Rule) Matches(n *markup.Node) bool {
	return r.Predicate != nil && r.Predicate.Match(n)
}

// Diagnostic represents a single finding in a document. It references the
// offending node but does not own the tree; diagnostics stay valid only as
// long as the caller keeps the Document alive.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// Severity is copied from the rule at match time.
	Severity config.Severity

	// Message is the rendered message with attribute placeholders substituted.
	Message string

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string

	// FilePath is the path to the file containing the issue.
	FilePath string

	// NodePath is the CSS-like location of the node, for presentation.
	NodePath string

	// Node is the offending node (shared reference, never owned).
	Node *markup.Node

	// StartLine is the 1-based line number where the opening tag starts.
	// Zero when the parser provided no position.
	StartLine int

	// StartColumn is the 1-based column number where the opening tag starts.
	StartColumn int

	// EndLine is the 1-based line number where the opening tag ends.
	EndLine int

	// EndColumn is the 1-based column number where the opening tag ends.
	EndColumn int
}

// HasPosition returns true if the diagnostic carries line/column information.
func (d *Diagnostic) HasPosition() bool {
	return d.StartLine > 0 && d.StartColumn > 0
}

// newDiagnostic builds a Diagnostic for a rule match during traversal.
func newDiagnostic(rule Rule, n *markup.Node, filePath string) Diagnostic {
	pos := n.SourcePosition()
	return Diagnostic{
		RuleID:      rule.ID,
		Severity:    rule.Severity,
		Message:     RenderMessage(rule.Message, n),
		Suggestion:  rule.Suggestion,
		FilePath:    filePath,
		NodePath:    n.Path(),
		Node:        n,
		StartLine:   pos.StartLine,
		StartColumn: pos.StartColumn,
		EndLine:     pos.EndLine,
		EndColumn:   pos.EndColumn,
	}
}
