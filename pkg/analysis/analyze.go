// Package analysis aggregates runner results into report structures used by
// the summary reporter and the rules command.
package analysis

import (
	"cmp"
	"slices"

	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/runner"
)

// SortBy selects the ordering for aggregated tables.
type SortBy string

const (
	SortByCount SortBy = "count"
	SortByName  SortBy = "name"
)

// Options controls report generation.
type Options struct {
	// SortBy orders the ByRule and ByFile tables.
	SortBy SortBy

	// SortDesc reverses the sort order.
	SortDesc bool
}

// Totals holds aggregate counts for a run.
type Totals struct {
	Files           int
	FilesWithIssues int
	FilesErrored    int
	Issues          int
	Errors          int
	Warnings        int
}

// RuleCount is the issue count for one rule across all files.
type RuleCount struct {
	RuleID   string
	Severity config.Severity
	Count    int
}

// FileCount is the issue count for one file.
type FileCount struct {
	Path  string
	Count int
}

// Report is the aggregated view of a run.
type Report struct {
	Totals Totals
	ByRule []RuleCount
	ByFile []FileCount
}

// Analyze builds a Report from a runner result.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{}
	if result == nil {
		return report
	}

	report.Totals = Totals{
		Files:           result.Stats.FilesChecked,
		FilesWithIssues: result.Stats.FilesWithIssues,
		FilesErrored:    result.Stats.FilesErrored,
		Issues:          result.Stats.TotalIssues,
		Errors:          result.Stats.Errors,
		Warnings:        result.Stats.Warnings,
	}

	byRule := make(map[string]*RuleCount)
	byFile := make(map[string]int)

	for _, file := range result.Files {
		if file.Error != nil || file.Result == nil {
			continue
		}
		for _, d := range file.Result.Diagnostics {
			rc, ok := byRule[d.RuleID]
			if !ok {
				rc = &RuleCount{RuleID: d.RuleID, Severity: d.Severity}
				byRule[d.RuleID] = rc
			}
			rc.Count++
			byFile[file.Path]++
		}
	}

	for _, rc := range byRule {
		report.ByRule = append(report.ByRule, *rc)
	}
	for path, count := range byFile {
		report.ByFile = append(report.ByFile, FileCount{Path: path, Count: count})
	}

	sortRules(report.ByRule, opts)
	sortFiles(report.ByFile, opts)

	return report
}

func sortRules(rules []RuleCount, opts Options) {
	slices.SortFunc(rules, func(a, b RuleCount) int {
		var c int
		if opts.SortBy == SortByCount {
			c = cmp.Compare(a.Count, b.Count)
			if opts.SortDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
			// Ties break on rule ID for stable output.
			return cmp.Compare(a.RuleID, b.RuleID)
		}
		c = cmp.Compare(a.RuleID, b.RuleID)
		if opts.SortDesc {
			c = -c
		}
		return c
	})
}

func sortFiles(files []FileCount, opts Options) {
	slices.SortFunc(files, func(a, b FileCount) int {
		var c int
		if opts.SortBy == SortByCount {
			c = cmp.Compare(a.Count, b.Count)
			if opts.SortDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
			return cmp.Compare(a.Path, b.Path)
		}
		c = cmp.Compare(a.Path, b.Path)
		if opts.SortDesc {
			c = -c
		}
		return c
	})
}
