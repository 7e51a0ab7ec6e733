package hclconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/schematicgo/internal/config"
	"github.com/specialistvlad/schematicgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes env to expressions as the `env` object.
func newEvalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	envVal := cty.EmptyObjectVal
	if len(vals) > 0 {
		envVal = cty.ObjectVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

func translateSchematic(ctx context.Context, file string, b *schematicBlock, evalCtx *hcl.EvalContext) (*config.Schematic, error) {
	logger := ctxlog.FromContext(ctx)

	if b.Name == "" {
		return nil, fmt.Errorf("%s: schematic block requires a non-empty name", file)
	}
	if b.Path == "" {
		return nil, fmt.Errorf("%s: schematic %q requires a non-empty path", file, b.Name)
	}

	s := &config.Schematic{
		Name:   b.Name,
		Path:   b.Path,
		Source: file,
	}
	if !filepath.IsAbs(s.Path) {
		s.Path = filepath.Join(filepath.Dir(file), s.Path)
	}
	if b.Aggregate != nil {
		s.Aggregate = *b.Aggregate
	}

	if isExprDefined(b.Expect) {
		expect, err := decodeExpect(b.Expect, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: schematic %q: %w", file, b.Name, err)
		}
		s.Expect = &expect
	}

	logger.Debug("Translated schematic block.", "name", s.Name, "path", s.Path, "aggregate", s.Aggregate, "has_expect", s.Expect != nil)
	return s, nil
}

// isExprDefined reports whether an optional attribute was actually written.
// The decoder fills omitted optional expressions with a zero-width
// placeholder.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// decodeExpect evaluates expr as a non-negative whole number.
func decodeExpect(expr hcl.Expression, evalCtx *hcl.EvalContext) (uint64, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid expect: %w", diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("invalid expect: value must be known and not null")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("invalid expect: %w", err)
	}

	var out uint64
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, fmt.Errorf("invalid expect: %w", err)
	}
	return out, nil
}
