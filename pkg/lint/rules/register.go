package rules

import "github.com/davgit/diagnosticss/pkg/lint"

// Builtin returns the full built-in rule catalog in evaluation order.
// The slice is freshly allocated; callers may append their own rules before
// resolving a registry from it.
func Builtin() []lint.Rule {
	var catalog []lint.Rule
	catalog = append(catalog, inlineRules()...)
	catalog = append(catalog, linkRules()...)
	catalog = append(catalog, structureRules()...)
	catalog = append(catalog, mediaRules()...)
	catalog = append(catalog, formRules()...)
	return catalog
}

// RegisterAll registers the built-in catalog with the given registry.
func RegisterAll(registry *lint.Registry) error {
	for _, rule := range Builtin() {
		if err := registry.Register(rule); err != nil {
			return err
		}
	}
	return nil
}
