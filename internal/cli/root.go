// Package cli provides the Cobra command structure for diagnosticss.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/davgit/diagnosticss/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root diagnosticss command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "diagnosticss",
		Short: "A static analyzer for HTML markup quality",
		Long: `diagnosticss is a static analyzer for HTML markup, inspired by the
"diagnostic CSS" technique of highlighting questionable markup with selectors.

It parses documents into an element tree, evaluates a catalog of selector-like
rules against every element, and reports findings with precise source
positions: inline styles and event handlers, broken or questionable links,
empty elements, images without alt text, form controls missing names, and
deprecated elements.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
