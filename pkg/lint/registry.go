package lint

import (
	"sync"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// Registry holds registered rules in registration order. Evaluation order for
// a node follows registration order, so output is reproducible across runs.
// The registry is safe for concurrent reads once registration is complete.
type Registry struct {
	mu      sync.RWMutex
	ordered []Rule
	byID    map[string]int // rule ID -> index into ordered
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]int),
	}
}

// Register adds a rule to the registry. It returns a *DuplicateRuleError if
// a rule with the same ID is already registered.
func (r *Registry) Register(rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rule.ID]; exists {
		return &DuplicateRuleError{ID: rule.ID}
	}

	r.byID[rule.ID] = len(r.ordered)
	r.ordered = append(r.ordered, rule)
	return nil
}

// MustRegister registers a rule and panics on duplicate IDs.
// Intended for built-in catalog setup where a collision is a programming error.
func (r *Registry) MustRegister(rule Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// RulesFor returns, in registration order, every rule whose predicate matches
// the node. This is a pure read; it never mutates the registry or the node.
func (r *Registry) RulesFor(n *markup.Node) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Rule
	for _, rule := range r.ordered {
		if rule.Matches(n) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// Get retrieves a rule by ID.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return Rule{}, false
	}
	return r.ordered[idx], true
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// IDs returns all registered rule IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.ordered))
	for i, rule := range r.ordered {
		result[i] = rule.ID
	}
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
