package runner

import (
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Result holds the diagnostics when processing succeeded.
	Result *lint.FileResult

	// Error holds the processing failure, if any.
	Error error
}

// Stats aggregates counts across a run.
type Stats struct {
	FilesDiscovered int
	FilesChecked    int
	FilesWithIssues int
	FilesErrored    int
	TotalIssues     int
	Errors          int
	Warnings        int
}

// Result collects per-file outcomes and aggregate statistics for one run.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesChecked++
	if outcome.Result == nil {
		return
	}

	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	r.Stats.TotalIssues += outcome.Result.IssueCount()

	for _, d := range outcome.Result.Diagnostics {
		switch d.Severity {
		case config.SeverityError:
			r.Stats.Errors++
		case config.SeverityWarning:
			r.Stats.Warnings++
		}
	}
}

// Failed reports whether the run should produce a non-zero exit code.
// Errors always fail; warnings fail only in strict mode. File-level
// processing errors are reported separately by the caller.
func (r *Result) Failed(strict bool) bool {
	if r.Stats.Errors > 0 {
		return true
	}
	return strict && r.Stats.Warnings > 0
}

// HasProcessingErrors reports whether any file failed to parse or read.
func (r *Result) HasProcessingErrors() bool {
	return r.Stats.FilesErrored > 0
}
