// Package gearratio registers the "gear_ratio" aggregation: the sum of the
// products of the two part numbers around every gear touching exactly two.
package gearratio

import (
	"context"

	"github.com/specialistvlad/schematicgo/internal/aggregate"
	"github.com/specialistvlad/schematicgo/internal/registry"
	"github.com/specialistvlad/schematicgo/internal/schematic"
)

// Name is the aggregation name used on the command line and in run files.
const Name = "gear_ratio"

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunGearRatio is the handler for the gear_ratio aggregation.
func OnRunGearRatio(ctx context.Context, tokens *schematic.Tokens, opts registry.Options) (*registry.Result, error) {
	agg := aggregate.New(opts.Workers)
	gears, err := agg.Gears(ctx, tokens)
	if err != nil {
		return nil, err
	}
	sum, err := aggregate.SumRatios(gears)
	if err != nil {
		return nil, err
	}

	res := &registry.Result{Value: sum}
	for _, g := range gears {
		if !g.Meshed() {
			continue
		}
		res.Details = append(res.Details, registry.Detail{
			Symbol:       string(g.Part.Value),
			Column:       g.Part.Column,
			Row:          g.Part.Row,
			Numbers:      []uint64{g.Numbers[0].Value, g.Numbers[1].Value},
			Contribution: g.Ratio,
		})
	}
	return res, nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler(Name, &registry.RegisteredHandler{
		Description: "Sum of gear ratios over gears adjacent to exactly two part numbers.",
		Fn:          OnRunGearRatio,
	})
}
