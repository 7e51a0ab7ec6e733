package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/schematicgo/internal/ctxlog"
	"github.com/specialistvlad/schematicgo/internal/registry"
	"github.com/specialistvlad/schematicgo/internal/report"
	"github.com/specialistvlad/schematicgo/internal/scanner"
	"github.com/specialistvlad/schematicgo/internal/schematic"
)

// Run executes the main application logic. Without watch mode it analyses
// every schematic once; with it, it keeps re-analysing until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "watch", a.config.Watch)

	if a.config.Watch {
		return a.watch(ctx)
	}
	err := a.runOnce(ctx)
	a.logger.Debug("App.Run method finished.")
	return err
}

// runOnce analyses every job, renders all results and then checks the
// expectations, so that mismatching values are still printed.
func (a *App) runOnce(ctx context.Context) error {
	entries := make([]report.Entry, 0, len(a.jobs))
	for _, j := range a.jobs {
		entry, err := a.process(ctx, j)
		if err != nil {
			a.recordRun(err)
			return err
		}
		entries = append(entries, *entry)
	}

	if err := report.Render(a.outW, a.config.Format, entries); err != nil {
		err = fmt.Errorf("failed to render results: %w", err)
		a.recordRun(err)
		return err
	}

	var errs []error
	for i, j := range a.jobs {
		if j.expect != nil && *j.expect != entries[i].Value {
			errs = append(errs, &ExpectationError{Name: j.name, Expected: *j.expect, Actual: entries[i].Value})
		}
	}
	err := errors.Join(errs...)
	a.recordRun(err)
	return err
}

// process runs the scan and aggregation passes over one schematic.
func (a *App) process(ctx context.Context, j job) (*report.Entry, error) {
	ctx = ctxlog.With(ctx, "schematic", j.name)
	logger := ctxlog.FromContext(ctx)

	text, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic %q: %w", j.path, err)
	}
	grid := schematic.ParseGrid(string(text))
	logger.Debug("Schematic read.", "path", j.path, "rows", grid.Height())

	tokens, err := scanner.Scan(grid)
	if err != nil {
		return nil, fmt.Errorf("failed to scan schematic %q: %w", j.name, err)
	}
	logger.Debug("Schematic scanned.", "parts", len(tokens.Parts), "numbers", len(tokens.Numbers))

	handler, err := a.registry.Handler(j.aggregate)
	if err != nil {
		return nil, err
	}
	res, err := handler.Fn(ctx, tokens, registry.Options{Workers: a.config.WorkerCount})
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s for schematic %q: %w", j.aggregate, j.name, err)
	}
	logger.Info("Schematic analysed.", "aggregate", j.aggregate, "value", res.Value)

	return &report.Entry{
		Name:      j.name,
		Path:      j.path,
		Aggregate: j.aggregate,
		Value:     res.Value,
		Details:   res.Details,
	}, nil
}

func (a *App) recordRun(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.runs++
	a.lastErr = err
}

// lastRun reports how many runs completed and the outcome of the latest.
func (a *App) lastRun() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.runs, a.lastErr
}
