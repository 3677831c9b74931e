package runner

import "github.com/davgit/diagnosticss/pkg/config"

// defaultExtensions are the file extensions treated as HTML when the
// configuration does not override them.
var defaultExtensions = []string{".html", ".htm", ".xhtml"}

// Options controls discovery and execution for a single Run.
type Options struct {
	// Paths are the files and directories to lint. Empty means the
	// working directory.
	Paths []string

	// WorkingDir is the base for relative paths. Empty means os.Getwd().
	WorkingDir string

	// Extensions overrides the recognized file extensions (with leading dot).
	Extensions []string

	// IncludeGlobs restricts files to those matching at least one pattern.
	IncludeGlobs []string

	// ExcludeGlobs skips files and directories matching any pattern.
	ExcludeGlobs []string

	// FollowSymlinks walks into directory symlinks when set.
	FollowSymlinks bool

	// SniffContent accepts explicitly listed files with unrecognized
	// extensions when their content looks like HTML.
	SniffContent bool

	// Jobs is the number of parallel workers. Zero or negative means one
	// worker per CPU.
	Jobs int

	// Config supplies analysis budgets and ignore patterns.
	Config *config.Config
}

// effectiveExtensions returns the extension list to use for discovery.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	if o.Config != nil && len(o.Config.Extensions) > 0 {
		return o.Config.Extensions
	}
	return defaultExtensions
}

// effectivePaths returns the input paths, defaulting to the current directory.
func (o Options) effectivePaths() []string {
	if len(o.Paths) > 0 {
		return o.Paths
	}
	return []string{"."}
}

// effectiveExcludes merges CLI excludes with config ignore patterns.
func (o Options) effectiveExcludes() []string {
	if o.Config == nil || len(o.Config.Ignore) == 0 {
		return o.ExcludeGlobs
	}
	merged := make([]string, 0, len(o.ExcludeGlobs)+len(o.Config.Ignore))
	merged = append(merged, o.ExcludeGlobs...)
	merged = append(merged, o.Config.Ignore...)
	return merged
}
