package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig   = "config"
	FieldJobs     = "jobs"
	FieldStrict   = "strict"
	FieldMaxDepth = "max_depth"
	FieldMaxNodes = "max_nodes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesErrored    = "files_errored"
	FieldIssuesTotal     = "issues_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldRules       = "rules"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
