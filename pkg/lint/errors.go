package lint

import "fmt"

// DuplicateRuleError is returned by Registry.Register when a rule ID is
// already taken. Registration of other rules is unaffected.
type DuplicateRuleError struct {
	ID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.ID)
}

// MalformedTreeError is returned by Analyze when the input violates the tree
// invariants (a cycle, or a configured depth/node budget exceeded). The
// analysis is aborted; registry state is unaffected.
type MalformedTreeError struct {
	// Reason describes the violated invariant.
	Reason string

	// NodePath locates the offending node when known.
	NodePath string
}

func (e *MalformedTreeError) Error() string {
	if e.NodePath != "" {
		return fmt.Sprintf("malformed tree at %s: %s", e.NodePath, e.Reason)
	}
	return "malformed tree: " + e.Reason
}
