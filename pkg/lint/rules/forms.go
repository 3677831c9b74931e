package rules

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// formRules covers form controls missing attributes needed for submission
// or association. Overlapping findings are intentional: a submit input with
// neither name nor value trips both control-missing-name and
// submit-missing-value, one finding per independent problem.
func formRules() []lint.Rule {
	return []lint.Rule{
		{
			ID:          "input-missing-type",
			Description: "Input without a type attribute",
			Severity:    config.SeverityError,
			Message:     "input has no type attribute",
			Suggestion:  "declare the input type explicitly",
			Tags:        []string{"forms"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("input"),
				lint.Not(lint.HasAttribute("type")),
			),
		},
		{
			ID:          "textarea-missing-rowscols",
			Description: "Textarea without rows and cols attributes",
			Severity:    config.SeverityError,
			Message:     "textarea has neither rows nor cols",
			Suggestion:  "size the textarea with rows and cols",
			Tags:        []string{"forms"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("textarea"),
				lint.Not(lint.HasAttribute("rows")),
				lint.Not(lint.HasAttribute("cols")),
			),
		},
		{
			ID:          "control-missing-name",
			Description: "Form control without a name, or with an empty one",
			Severity:    config.SeverityError,
			Message:     "form control <{tag}> has a missing or empty name",
			Suggestion:  "name the control so it submits a value",
			Tags:        []string{"forms"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("input", "select", "textarea"),
				lint.Or(
					lint.Not(lint.HasAttribute("name")),
					lint.AttributeEquals("name", ""),
				),
			),
		},
		{
			ID:          "submit-missing-value",
			Description: "Submit input without a value attribute",
			Severity:    config.SeverityError,
			Message:     "submit input has no value",
			Suggestion:  "label the button with a value attribute",
			Tags:        []string{"forms"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("input"),
				lint.AttributeEquals("type", "submit"),
				lint.Not(lint.HasAttribute("value")),
			),
		},
		{
			ID:          "label-missing-for",
			Description: "Label without a for attribute, or with an empty one",
			Severity:    config.SeverityWarning,
			Message:     "label has a missing or empty for attribute",
			Suggestion:  "associate the label with a control via for",
			Tags:        []string{"forms", "accessibility"},
			Enabled:     true,
			Predicate: lint.And(
				lint.TagIn("label"),
				lint.Or(
					lint.Not(lint.HasAttribute("for")),
					lint.AttributeEquals("for", ""),
				),
			),
		},
	}
}
