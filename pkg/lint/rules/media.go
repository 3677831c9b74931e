package rules

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// mediaRules covers images missing accessibility or layout attributes.
func mediaRules() []lint.Rule {
	return []lint.Rule{
		{
			ID:          "img-missing-alt",
			Description: "Image without alternative text",
			Severity:    config.SeverityError,
			Message:     `image "{src}" has no alt attribute`,
			Suggestion:  "add alt text, or alt=\"\" for decorative images",
			Tags:        []string{"media", "accessibility"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("img"),
				lint.Not(lint.HasAttribute("alt")),
			),
		},
		{
			ID:          "img-missing-dimensions",
			Description: "Image without width and height attributes",
			Severity:    config.SeverityWarning,
			Message:     `image "{src}" has neither width nor height`,
			Suggestion:  "declare dimensions to avoid layout shift",
			Tags:        []string{"media"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("img"),
				lint.Not(lint.HasAttribute("width")),
				lint.Not(lint.HasAttribute("height")),
			),
		},
	}
}
