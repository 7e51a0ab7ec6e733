package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/schematicgo/internal/watch"
)

// watch analyses all schematics, then again after every change to one of
// their files. Failed runs are logged and do not end the loop.
func (a *App) watch(ctx context.Context) error {
	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	w, err := watch.New(a.Paths(), 0)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	if err := a.runOnce(ctx); err != nil {
		a.logger.Error("Analysis failed.", "error", err)
	}
	a.logger.Info("👀 Watching schematics for changes.", "files", len(a.jobs))

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped.")
			return nil
		case path, ok := <-w.Changes:
			if !ok {
				return nil
			}
			a.logger.Info("Schematic changed, re-running.", "path", path)
			if err := a.runOnce(ctx); err != nil {
				a.logger.Error("Analysis failed.", "error", err)
			}
		}
	}
}
