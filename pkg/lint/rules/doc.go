// Package rules provides the built-in rule catalog for diagnosticss.
//
// The catalog flags markup patterns that usually indicate sloppy or broken
// HTML: inline styles, inline event handlers, missing or suspicious link
// targets, empty block elements, images without alternative text or
// dimensions, form controls missing required attributes, and deprecated
// elements.
//
// The catalog is data, not behavior: every entry is a lint.Rule value built
// from the predicate combinators in pkg/lint. Callers can register
// additional rules alongside the catalog through the same registry API.
package rules
