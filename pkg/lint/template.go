package lint

import (
	"strings"

	"github.com/davgit/diagnosticss/pkg/markup"
)

// RenderMessage substitutes placeholders in a message template with values
// from the matched node. {tag} renders the element's tag name; any other
// {name} renders the value of that attribute. Placeholders referencing
// absent attributes render as empty strings rather than failing.
func RenderMessage(template string, n *markup.Node) string {
	if !strings.ContainsRune(template, '{') {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			// Unterminated placeholder: emit literally.
			sb.WriteString(rest)
			break
		}
		closing += open

		sb.WriteString(rest[:open])
		name := rest[open+1 : closing]
		sb.WriteString(placeholderValue(name, n))
		rest = rest[closing+1:]
	}

	return sb.String()
}

func placeholderValue(name string, n *markup.Node) string {
	if n == nil {
		return ""
	}
	if name == "tag" {
		return n.Tag
	}
	value, _ := n.Attr(name)
	return value
}
