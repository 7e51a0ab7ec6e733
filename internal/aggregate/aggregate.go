package aggregate

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/specialistvlad/schematicgo/internal/schematic"
	"golang.org/x/sync/errgroup"
)

// Gear is a gear symbol together with every part number adjacent to it.
type Gear struct {
	Part    schematic.EnginePart
	Numbers []schematic.PartNumber
	// Ratio is the product of the two numbers of a meshed gear, zero otherwise.
	Ratio uint64
}

// Meshed reports whether the gear touches exactly two part numbers.
func (g Gear) Meshed() bool {
	return len(g.Numbers) == 2
}

// Aggregator evaluates gears on up to workers goroutines.
type Aggregator struct {
	workers int
}

// New creates an Aggregator. A worker count below one means one.
func New(workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{workers: workers}
}

// Gears returns every gear of tokens in scan order with its adjacent part
// numbers and, for meshed gears, its ratio.
func (a *Aggregator) Gears(ctx context.Context, tokens *schematic.Tokens) ([]Gear, error) {
	parts := tokens.Gears()
	if len(parts) == 0 {
		return nil, nil
	}

	ix := NewIndex(tokens.Numbers)
	gears := make([]Gear, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gear, err := evaluate(ix, part)
			if err != nil {
				return err
			}
			gears[i] = gear
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return gears, nil
}

// GearRatioSum adds up the ratios of all meshed gears. Gears touching zero,
// one, or three or more part numbers contribute nothing.
func (a *Aggregator) GearRatioSum(ctx context.Context, tokens *schematic.Tokens) (uint64, error) {
	gears, err := a.Gears(ctx, tokens)
	if err != nil {
		return 0, err
	}
	return SumRatios(gears)
}

// SumRatios adds up the ratios of the meshed gears among gears.
func SumRatios(gears []Gear) (uint64, error) {
	var sum uint64
	var err error
	for _, gear := range gears {
		if !gear.Meshed() {
			continue
		}
		if sum, err = add(sum, gear.Ratio); err != nil {
			return 0, fmt.Errorf("gear ratio sum at %v: %w", gear.Part, err)
		}
	}
	return sum, nil
}

// GearRatioSum is the single-worker form of Aggregator.GearRatioSum.
func GearRatioSum(tokens *schematic.Tokens) (uint64, error) {
	return New(1).GearRatioSum(context.Background(), tokens)
}

// PartNumberSum adds up every part number adjacent to at least one engine
// part of any symbol. Each number counts once.
func PartNumberSum(tokens *schematic.Tokens) (uint64, error) {
	ix := newPartIndex(tokens.Parts)
	var sum uint64
	var err error
	for _, n := range tokens.Numbers {
		if !ix.touches(n) {
			continue
		}
		if sum, err = add(sum, n.Value); err != nil {
			return 0, fmt.Errorf("part number sum at %v: %w", n, err)
		}
	}
	return sum, nil
}

func evaluate(ix *Index, part schematic.EnginePart) (Gear, error) {
	gear := Gear{Part: part, Numbers: ix.Adjacent(part)}
	if !gear.Meshed() {
		return gear, nil
	}
	a, b := gear.Numbers[0].Value, gear.Numbers[1].Value
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return Gear{}, fmt.Errorf("gear ratio %d * %d at %v: %w", a, b, part, schematic.ErrNumericOverflow)
	}
	gear.Ratio = lo
	return gear, nil
}

func add(sum, v uint64) (uint64, error) {
	total, carry := bits.Add64(sum, v, 0)
	if carry != 0 {
		return 0, schematic.ErrNumericOverflow
	}
	return total, nil
}
