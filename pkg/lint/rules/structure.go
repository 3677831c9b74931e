package rules

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// deprecatedTags lists elements dropped from the HTML standard.
var deprecatedTags = []string{
	"acronym",
	"applet",
	"basefont",
	"bgsound",
	"big",
	"blink",
	"center",
	"dir",
	"font",
	"frame",
	"frameset",
	"isindex",
	"keygen",
	"listing",
	"marquee",
	"menuitem",
	"nobr",
	"noembed",
	"noframes",
	"plaintext",
	"spacer",
	"strike",
	"tt",
	"xmp",
}

// structureRules covers structural problems: empty content elements and
// deprecated elements.
func structureRules() []lint.Rule {
	return []lint.Rule{
		{
			ID:          "empty-element",
			Description: "Content element with no children and no text",
			Severity:    config.SeverityWarning,
			Message:     "empty <{tag}> element",
			Suggestion:  "remove the element or give it content",
			Tags:        []string{"structure"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("li", "p", "td", "th"),
				lint.IsEmpty(),
			),
		},
		{
			ID:          "deprecated-element",
			Description: "Element removed from the HTML standard",
			Severity:    config.SeverityError,
			Message:     "deprecated element <{tag}>",
			Suggestion:  "replace with a standard element and CSS",
			Tags:        []string{"structure"},
			Enabled:     true,
			// Tag membership only; attributes are irrelevant here.
			Predicate: lint.TagIn(deprecatedTags...),
		},
	}
}
