// Package partsum registers the "part_sum" aggregation: the sum of every
// part number adjacent to a symbol.
package partsum

import (
	"context"

	"github.com/specialistvlad/schematicgo/internal/aggregate"
	"github.com/specialistvlad/schematicgo/internal/registry"
	"github.com/specialistvlad/schematicgo/internal/schematic"
)

// Name is the aggregation name used on the command line and in run files.
const Name = "part_sum"

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunPartSum is the handler for the part_sum aggregation. It ignores the
// worker count; a single pass over the numbers is enough.
func OnRunPartSum(ctx context.Context, tokens *schematic.Tokens, _ registry.Options) (*registry.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sum, err := aggregate.PartNumberSum(tokens)
	if err != nil {
		return nil, err
	}
	return &registry.Result{Value: sum}, nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler(Name, &registry.RegisteredHandler{
		Description: "Sum of part numbers adjacent to any symbol.",
		Fn:          OnRunPartSum,
	})
}
