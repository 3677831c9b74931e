// Package langdetect provides content-based detection of HTML files.
// It uses go-enry to classify content for files whose extension does not
// already identify them, so explicitly listed files without an .html/.htm
// extension can still be linted.
package langdetect

import (
	"bytes"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates limits the classifier to languages that plausibly
// appear next to HTML in a web project.
var classifierCandidates = []string{
	"HTML", "XML", "Markdown", "CSS", "JavaScript", "JSON", "YAML", "Text",
}

// IsHTML reports whether the content looks like an HTML document.
func IsHTML(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	// Cheap structural checks first; they are far more reliable than the
	// classifier for the common cases.
	trimmed := bytes.TrimLeft(content, " \t\r\n")
	lower := bytes.ToLower(prefix(trimmed, 64))
	if bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.HasPrefix(lower, []byte("<html")) {
		return true
	}

	lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates)
	return safe && lang == "HTML"
}

// DetectByFilename returns true when enry recognizes the filename as HTML.
func DetectByFilename(filename string) bool {
	for _, lang := range enry.GetLanguagesByFilename(filename, nil, nil) {
		if lang == "HTML" {
			return true
		}
	}
	return false
}

func prefix(b []byte, n int) []byte {
	if len(b) < n {
		return b
	}
	return b[:n]
}
