// Package main is the entry point for the diagnosticss CLI.
package main

import (
	"errors"
	"os"

	"github.com/davgit/diagnosticss/internal/cli"
	"github.com/davgit/diagnosticss/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return cli.ExitSuccess
	case errors.Is(err, cli.ErrIssuesFound):
		// Findings are already reported; the error is just an exit signal.
		return cli.ExitErrors
	case errors.Is(err, cli.ErrStrictWarnings):
		return cli.ExitWarnings
	default:
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitErrors
	}
}
