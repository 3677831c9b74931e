// Package runner orchestrates multi-file analysis: discovery, a worker pool,
// and deterministic aggregation of per-file outcomes. Concurrency is safe by
// construction: the registry is read-only during analysis and every file
// gets its own document tree.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/davgit/diagnosticss/internal/logging"
	"github.com/davgit/diagnosticss/pkg/lint"
)

// Runner orchestrates multi-file linting using a lint.Engine.
type Runner struct {
	// Engine handles per-file parsing and rule evaluation.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate
// stats: outcomes are ordered by file path regardless of worker scheduling.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovery complete", logging.FieldFilesDiscovered, len(files))

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	analysisOpts := lint.Options{}
	if opts.Config != nil {
		analysisOpts.MaxDepth = opts.Config.MaxDepth
		analysisOpts.MaxNodes = opts.Config.MaxNodes
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, analysisOpts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers may complete out of order; collect into a map and rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		outcome, ok := outcomes[path]
		if !ok {
			continue
		}
		if outcome.Error != nil {
			logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, outcome.Error)
		}
		result.accumulate(outcome)
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	analysisOpts lint.Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		content, err := os.ReadFile(path)
		if err != nil {
			outcome.Error = fmt.Errorf("read %s: %w", path, err)
		} else {
			fr, lintErr := r.Engine.LintFile(ctx, path, content, analysisOpts)
			if lintErr != nil {
				outcome.Error = lintErr
			} else {
				outcome.Result = fr
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
