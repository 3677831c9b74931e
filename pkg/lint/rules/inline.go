package rules

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// eventAttributes lists the inline event handler attributes flagged by the
// inline-event-* rules. One rule is generated per attribute so findings name
// the specific handler.
var eventAttributes = []string{
	"onabort",
	"onauxclick",
	"onbeforeunload",
	"onblur",
	"oncanplay",
	"oncanplaythrough",
	"onchange",
	"onclick",
	"onclose",
	"oncontextmenu",
	"oncopy",
	"oncut",
	"ondblclick",
	"ondrag",
	"ondragend",
	"ondragenter",
	"ondragleave",
	"ondragover",
	"ondragstart",
	"ondrop",
	"ondurationchange",
	"onemptied",
	"onended",
	"onerror",
	"onfocus",
	"onhashchange",
	"oninput",
	"oninvalid",
	"onkeydown",
	"onkeypress",
	"onkeyup",
	"onload",
	"onmousedown",
	"onmouseenter",
	"onmouseleave",
	"onmousemove",
	"onmouseout",
	"onmouseover",
	"onmouseup",
	"onpaste",
	"onpause",
	"onplay",
	"onreset",
	"onresize",
	"onscroll",
	"onselect",
	"onstalled",
	"onsubmit",
	"onsuspend",
	"ontimeupdate",
	"ontoggle",
	"onunload",
	"onvolumechange",
	"onwaiting",
	"onwheel",
}

// inlineRules covers presentation and behavior mixed into markup.
func inlineRules() []lint.Rule {
	rules := []lint.Rule{
		{
			ID:          "inline-style",
			Description: "Element carries an inline style attribute",
			Severity:    config.SeverityWarning,
			Message:     "inline style attribute on <{tag}>",
			Suggestion:  "move presentation into a stylesheet",
			Tags:        []string{"presentation"},
			Enabled:     true,
			Predicate:   lint.HasAttribute("style"),
		},
	}

	for _, name := range eventAttributes {
		rules = append(rules, lint.Rule{
			ID:          "inline-event-" + name,
			Description: "Element carries an inline " + name + " event handler",
			Severity:    config.SeverityError,
			Message:     "inline " + name + " handler on <{tag}>",
			Suggestion:  "attach event handlers from script instead",
			Tags:        []string{"behavior"},
			Enabled:     true,
			Predicate:   lint.HasAttribute(name),
		})
	}

	return rules
}
