package cli

import "github.com/davgit/diagnosticss/pkg/runner"

// Exit codes for diagnosticss.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitErrors indicates analysis completed but found errors.
	ExitErrors = 1

	// ExitWarnings indicates analysis found warnings under strict mode.
	ExitWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// Files that could not be read or parsed count as errors.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.Errors > 0 || result.Stats.FilesErrored > 0 {
		return ExitErrors
	}

	if strict && result.Stats.Warnings > 0 {
		return ExitWarnings
	}

	return ExitSuccess
}
