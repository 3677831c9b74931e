package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/davgit/diagnosticss/internal/ui/pretty"
	"github.com/davgit/diagnosticss/pkg/analysis"
	"github.com/davgit/diagnosticss/pkg/config"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	defaultTableWidth = 80 // Fallback width when the terminal size is unknown.
	maxTableWidth     = 100
	ruleColWidth      = 32 // Width of the rule id column.
	fileColWidth      = 60 // Width of the file path column.
	numColWidth       = 7  // Width of numeric columns.
	sevColWidth       = 10 // Width of the severity column.
	maxRuleIDLength   = 30 // Maximum characters for rule id before truncation.
	maxFilePathLength = 58 // Maximum characters for file path before truncation.
)

// terminalWidth returns the width of the terminal behind w, or fallback when
// w is not a terminal.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
	width  int
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	width := terminalWidth(opts.Writer, defaultTableWidth)
	if width > maxTableWidth {
		width = maxTableWidth
	}
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
		width:  width,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Issues == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No issues found"))
		return nil
	}

	r.renderRuleTable(report.ByRule)
	fmt.Fprintln(r.out)
	r.renderFileTable(report.ByFile)
	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleCount) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Rules Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("-", r.width)))

	// Header: pad first, then style
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Rule", ruleColWidth)),
		r.styles.TableHeader.Render(padRight("Severity", sevColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("-", r.width)))

	for _, rule := range rules {
		ruleID := rule.RuleID
		if len(ruleID) > maxRuleIDLength {
			ruleID = ruleID[:maxRuleIDLength-3] + "..."
		}

		// Pad first, then style, so ANSI codes do not skew the columns.
		sevStyle := r.styles.Warning
		nameStyle := r.styles.SummaryValue
		if rule.Severity == config.SeverityError {
			sevStyle = r.styles.Error
			nameStyle = r.styles.Error
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			nameStyle.Render(padRight(ruleID, ruleColWidth)),
			sevStyle.Render(padRight(string(rule.Severity), sevColWidth)),
			padLeft(strconv.Itoa(rule.Count), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileCount) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("-", r.width)))

	fmt.Fprintf(r.out, "%s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Issues", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("-", r.width)))

	for _, file := range files {
		path := r.opts.displayPath(file.Path)
		if len(path) > maxFilePathLength {
			path = "..." + path[len(path)-maxFilePathLength+3:]
		}

		fmt.Fprintf(r.out, "%s %s\n",
			r.styles.SummaryValue.Render(padRight(path, fileColWidth)),
			padLeft(strconv.Itoa(file.Count), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	var parts []string

	issueWord := "issues"
	if totals.Issues == 1 {
		issueWord = "issue"
	}
	parts = append(parts, fmt.Sprintf("%d %s in %d files", totals.Issues, issueWord, totals.FilesWithIssues))

	var sevParts []string
	if totals.Errors > 0 {
		sevParts = append(sevParts, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		sevParts = append(sevParts, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if len(sevParts) > 0 {
		parts = append(parts, "("+strings.Join(sevParts, ", ")+")")
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total:"), strings.Join(parts, " "))
}
