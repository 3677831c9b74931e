package rules

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// linkRules covers anchors with missing, empty, or suspicious destinations.
func linkRules() []lint.Rule {
	return []lint.Rule{
		{
			ID:          "link-missing-href",
			Description: "Link without an href attribute, or with an empty one",
			Severity:    config.SeverityError,
			Message:     "link with missing or empty href",
			Suggestion:  "give the link a real destination or use a button",
			Tags:        []string{"links"},
			Enabled:     true,
			// Absent and present-but-empty are distinct states; this rule
			// must catch both.
			Predicate: lint.And(
				lint.TagIn("a"),
				lint.Or(
					lint.Not(lint.HasAttribute("href")),
					lint.AttributeEquals("href", ""),
				),
			),
		},
		{
			ID:          "link-questionable-href",
			Description: "Link destination is a bare fragment or a javascript: URL",
			Severity:    config.SeverityWarning,
			Message:     `questionable link destination "{href}"`,
			Suggestion:  "point the link at a navigable URL",
			Tags:        []string{"links"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("a"),
				lint.Or(
					lint.AttributeEquals("href", "#"),
					lint.AttributeStartsWith("href", "javascript"),
				),
			),
		},
		{
			ID:          "link-target",
			Description: "Element forces a browsing target",
			Severity:    config.SeverityWarning,
			Message:     `target "{target}" forces a new browsing context`,
			Suggestion:  "let the user decide where links open",
			Tags:        []string{"links"},
			Enabled:     true,
			Predicate:   lint.HasAttribute("target"),
		},
	}
}
