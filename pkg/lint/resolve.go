package lint

import "github.com/davgit/diagnosticss/pkg/config"

// ResolveRegistry builds a registry from the catalog with configuration
// applied: disabled rules are dropped and severity overrides are baked into
// the registered rules. Registration order (and therefore evaluation order)
// follows catalog order.
func ResolveRegistry(catalog []Rule, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	for _, rule := range catalog {
		if cfg != nil {
			if !cfg.RuleEnabled(rule.ID, rule.Enabled) {
				continue
			}
			rule.Severity = cfg.RuleSeverity(rule.ID, rule.Severity)
		} else if !rule.Enabled {
			continue
		}

		if err := registry.Register(rule); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
