package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
	"github.com/davgit/diagnosticss/pkg/runner"
)

func diag(ruleID string, sev config.Severity) lint.Diagnostic {
	return lint.Diagnostic{RuleID: ruleID, Severity: sev}
}

func testResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/a.html",
				Result: &lint.FileResult{Diagnostics: []lint.Diagnostic{
					diag("img-missing-alt", config.SeverityError),
					diag("img-missing-alt", config.SeverityError),
					diag("inline-style", config.SeverityWarning),
				}},
			},
			{
				Path: "/b.html",
				Result: &lint.FileResult{Diagnostics: []lint.Diagnostic{
					diag("inline-style", config.SeverityWarning),
				}},
			},
		},
		Stats: runner.Stats{
			FilesChecked:    2,
			FilesWithIssues: 2,
			TotalIssues:     4,
			Errors:          2,
			Warnings:        2,
		},
	}
}

func TestAnalyze_Totals(t *testing.T) {
	report := Analyze(testResult(), Options{})

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 4, report.Totals.Issues)
	assert.Equal(t, 2, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
}

func TestAnalyze_ByRule_SortByCountDesc(t *testing.T) {
	report := Analyze(testResult(), Options{SortBy: SortByCount, SortDesc: true})

	require.Len(t, report.ByRule, 2)
	assert.Equal(t, "img-missing-alt", report.ByRule[0].RuleID)
	assert.Equal(t, 2, report.ByRule[0].Count)
	assert.Equal(t, config.SeverityError, report.ByRule[0].Severity)
	assert.Equal(t, "inline-style", report.ByRule[1].RuleID)
}

func TestAnalyze_ByRule_SortByName(t *testing.T) {
	report := Analyze(testResult(), Options{SortBy: SortByName})

	require.Len(t, report.ByRule, 2)
	assert.Equal(t, "img-missing-alt", report.ByRule[0].RuleID)
	assert.Equal(t, "inline-style", report.ByRule[1].RuleID)
}

func TestAnalyze_ByFile(t *testing.T) {
	report := Analyze(testResult(), Options{SortBy: SortByCount, SortDesc: true})

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "/a.html", report.ByFile[0].Path)
	assert.Equal(t, 3, report.ByFile[0].Count)
}

func TestAnalyze_SkipsErroredFiles(t *testing.T) {
	result := testResult()
	result.Files = append(result.Files, runner.FileOutcome{
		Path:  "/broken.html",
		Error: assert.AnError,
	})

	report := Analyze(result, Options{})
	assert.Len(t, report.ByFile, 2)
}

func TestAnalyze_Nil(t *testing.T) {
	report := Analyze(nil, Options{})
	assert.Zero(t, report.Totals.Issues)
	assert.Empty(t, report.ByRule)
}
