package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/specialistvlad/schematicgo/internal/config"
	"github.com/specialistvlad/schematicgo/internal/ctxlog"
	"github.com/specialistvlad/schematicgo/internal/registry"
	"github.com/specialistvlad/schematicgo/modules/gearratio"
	"github.com/specialistvlad/schematicgo/modules/partsum"
)

// coreModules is the definitive list of all aggregation modules compiled
// into the binary.
var coreModules = []registry.Module{
	&gearratio.Module{},
	&partsum.Module{},
}

// job is one schematic to analyse.
type job struct {
	name      string
	path      string
	aggregate string
	expect    *uint64
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	jobs     []job

	httpServer *http.Server
	mu         sync.Mutex
	lastErr    error
	runs       int
}

// NewApp is the constructor for the main application. Logs go to logW and
// rendered results to outW. The loader is only consulted when the input is
// a run file.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All aggregation modules registered.", "count", len(modules), "names", reg.Names())

	jobs, err := resolveJobs(ctx, cfg, loader)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if _, err := reg.Handler(j.aggregate); err != nil {
			return nil, fmt.Errorf("schematic %q: %w", j.name, err)
		}
	}
	logger.Debug("Jobs resolved.", "count", len(jobs))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		jobs:     jobs,
	}, nil
}

// resolveJobs turns the configured input into the list of schematics to
// analyse.
func resolveJobs(ctx context.Context, cfg *Config, loader config.Loader) ([]job, error) {
	if !cfg.RunFile {
		name := strings.TrimSuffix(filepath.Base(cfg.InputPath), filepath.Ext(cfg.InputPath))
		return []job{{name: name, path: cfg.InputPath, aggregate: cfg.Aggregate}}, nil
	}

	if loader == nil {
		return nil, fmt.Errorf("no loader available for run file %s", cfg.InputPath)
	}
	model, err := loader.Load(ctx, cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(model.Schematics) == 0 {
		return nil, fmt.Errorf("run file %s declares no schematics", cfg.InputPath)
	}

	jobs := make([]job, 0, len(model.Schematics))
	for _, s := range model.Schematics {
		aggregate := s.Aggregate
		if aggregate == "" {
			aggregate = cfg.Aggregate
		}
		jobs = append(jobs, job{name: s.Name, path: s.Path, aggregate: aggregate, expect: s.Expect})
	}
	return jobs, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Paths returns the schematic files the app reads, in job order.
func (a *App) Paths() []string {
	paths := make([]string, len(a.jobs))
	for i, j := range a.jobs {
		paths[i] = j.path
	}
	return paths
}
