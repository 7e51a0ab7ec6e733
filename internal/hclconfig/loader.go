package hclconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/schematicgo/internal/config"
	"github.com/specialistvlad/schematicgo/internal/ctxlog"
	"github.com/specialistvlad/schematicgo/internal/fsutil"
)

// Extension is the file extension of run files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a loader exposing the process environment as `env`.
func NewLoader() *Loader {
	return &Loader{}
}

// NewLoaderWithEnv creates a loader exposing env instead of the process
// environment.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{env: env}
}

// fileRoot is a struct used to decode all top-level blocks of a run file.
type fileRoot struct {
	Schematics []*schematicBlock `hcl:"schematic,block"`
}

type schematicBlock struct {
	Name      string         `hcl:"name,label"`
	Path      string         `hcl:"path"`
	Aggregate *string        `hcl:"aggregate,optional"`
	Expect    hcl.Expression `hcl:"expect,optional"`
}

// Load parses every run file under paths. A path is either a run file or a
// directory searched recursively for run files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := findRunFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s run files found in %s", Extension, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered run files.", "count", len(files))

	evalCtx := newEvalContext(l.environment())
	parser := hclparse.NewParser()
	model := &config.Model{}
	seen := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Schematics {
			s, err := translateSchematic(ctx, file, block, evalCtx)
			if err != nil {
				return nil, err
			}
			if prev, dup := seen[s.Name]; dup {
				return nil, fmt.Errorf("schematic %q in %s is already defined in %s", s.Name, file, prev)
			}
			seen[s.Name] = file
			model.Schematics = append(model.Schematics, s)
		}
	}

	logger.Debug("HCL loading complete.", "schematics", len(model.Schematics))
	return model, nil
}

func (l *Loader) environment() map[string]string {
	if l.env != nil {
		return l.env
	}
	env := make(map[string]string)
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}
	return env
}

// findRunFiles expands paths into a de-duplicated, ordered list of run files.
func findRunFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		files, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("error searching %s: %w", path, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return all, nil
}

// IsRunFile reports whether path names a run file or a directory, as
// opposed to a plain schematic text file.
func IsRunFile(path string) bool {
	if filepath.Ext(path) == Extension {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
