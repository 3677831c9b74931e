package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/davgit/diagnosticss/internal/ui/pretty"
	"github.com/davgit/diagnosticss/pkg/lint"
	"github.com/davgit/diagnosticss/pkg/markup"
	"github.com/davgit/diagnosticss/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int

	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalIssues, nil
}

// reportGrouped writes diagnostics grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.reportFileError(file)
			continue
		}

		if file.Result == nil {
			continue
		}

		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.opts.displayPath(file.Path), len(diagnostics)))

		for _, diag := range diagnostics {
			fmt.Fprint(r.bw, r.formatDiagnostic(&diag, file.Result.Doc))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes diagnostics without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.reportFileError(file)
			continue
		}

		if file.Result == nil {
			continue
		}

		for _, diag := range file.Result.Diagnostics {
			fmt.Fprint(r.bw, r.formatDiagnostic(&diag, file.Result.Doc))
			total++
		}
	}

	return total
}

func (r *TextReporter) formatDiagnostic(diag *lint.Diagnostic, doc *markup.Document) string {
	var sourceLine string
	if r.opts.ShowContext {
		sourceLine = getSourceLine(doc, diag.StartLine)
	}

	// Render with a display-adjusted path without mutating the stored value.
	display := *diag
	display.FilePath = r.opts.displayPath(diag.FilePath)

	return r.styles.FormatDiagnostic(&display, r.opts.ShowContext, sourceLine)
}

func (r *TextReporter) reportFileError(file runner.FileOutcome) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
	)
}

// getSourceLine extracts a specific line from a document using its
// pre-computed line index. This is O(1) per call.
func getSourceLine(doc *markup.Document, lineNum int) string {
	if doc == nil {
		return ""
	}
	content := doc.LineContent(lineNum)
	if content == nil {
		return ""
	}
	return string(content)
}
