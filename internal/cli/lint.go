package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davgit/diagnosticss/internal/configloader"
	"github.com/davgit/diagnosticss/internal/logging"
	"github.com/davgit/diagnosticss/pkg/config"
	"github.com/davgit/diagnosticss/pkg/lint"
	"github.com/davgit/diagnosticss/pkg/lint/rules"
	"github.com/davgit/diagnosticss/pkg/parser/nethtml"
	"github.com/davgit/diagnosticss/pkg/reporter"
	"github.com/davgit/diagnosticss/pkg/runner"
)

// ErrIssuesFound is returned when analysis finds error-severity issues or
// files that could not be processed.
var ErrIssuesFound = errors.New("issues found")

// ErrStrictWarnings is returned when analysis finds warnings under --strict.
var ErrStrictWarnings = errors.New("warnings found in strict mode")

type lintFlags struct {
	format    string
	ignore    []string
	enable    []string
	disable   []string
	strict    bool
	sniff     bool
	noContext bool
	compact   bool
	maxDepth  int
	maxNodes  int
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Analyze HTML files for markup issues",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Analyze HTML files for markup quality issues.

By default, checks all .html, .htm, and .xhtml files in the current directory
and subdirectories. Specify paths to check specific files or directories.

Examples:
  diagnosticss lint                  # Check current directory
  diagnosticss lint site/            # Check the site directory
  diagnosticss lint index.html       # Check a single file
  diagnosticss lint --format json    # Output as JSON for CI
  diagnosticss lint --format sarif   # Output as SARIF for code scanning
  diagnosticss lint --strict         # Treat warnings as failures
  diagnosticss lint --disable inline-style  # Turn a rule off`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Flags left at their default
	// must stay out of the CLI layer so file and env settings can win.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = flags.maxDepth
	}
	if cmd.Flags().Changed("max-nodes") {
		cfg.MaxNodes = flags.maxNodes
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// The runner and anything below it pull the logger from the context.
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldStrict, finalCfg.Strict,
	)

	// Resolve the rule catalog against the configuration.
	registry, err := lint.ResolveRegistry(rules.Builtin(), finalCfg)
	if err != nil {
		return fmt.Errorf("resolve rules: %w", err)
	}

	engine := lint.NewEngine(nethtml.New(), registry)
	lintRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		SniffContent: flags.sniff,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldRules, registry.Len(),
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitErrors:
		return ErrIssuesFound
	case ExitWarnings:
		return ErrStrictWarnings
	default:
		return nil
	}
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures for exit code")
	cmd.Flags().BoolVar(&flags.sniff, "sniff", false, "detect HTML content in files with other extensions")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "maximum document tree depth (0 = unlimited)")
	cmd.Flags().IntVar(&flags.maxNodes, "max-nodes", 0, "maximum document node count (0 = unlimited)")
}
