package schematic

import "fmt"

// GearSymbol marks the engine parts that take part in the gear ratio sum.
const GearSymbol = '*'

// EnginePart is a single cell holding a symbol.
type EnginePart struct {
	Value  rune
	Column int
	Row    int
}

// IsGear reports whether the part is a gear candidate.
func (p EnginePart) IsGear() bool {
	return p.Value == GearSymbol
}

// String implements fmt.Stringer.
func (p EnginePart) String() string {
	return fmt.Sprintf("%q@(%d,%d)", p.Value, p.Column, p.Row)
}

// PartNumber is a maximal horizontal run of digits within one row, covering
// the half-open column span [ColumnStart, ColumnEnd).
type PartNumber struct {
	Value       uint64
	ColumnStart int
	ColumnEnd   int
	Row         int
}

// Width returns the number of cells the part number occupies.
func (n PartNumber) Width() int {
	return n.ColumnEnd - n.ColumnStart
}

// AdjacentTo reports whether any cell of n touches p, diagonals included.
//
// Some x in [ColumnStart, ColumnEnd) lies within one column of p exactly when
// p.Column falls in [ColumnStart-1, ColumnEnd], given a non-empty span.
func (n PartNumber) AdjacentTo(p EnginePart) bool {
	if n.ColumnEnd <= n.ColumnStart {
		return false
	}
	if dy := n.Row - p.Row; dy < -1 || dy > 1 {
		return false
	}
	return p.Column >= n.ColumnStart-1 && p.Column <= n.ColumnEnd
}

// String implements fmt.Stringer.
func (n PartNumber) String() string {
	return fmt.Sprintf("%d@[%d,%d)x%d", n.Value, n.ColumnStart, n.ColumnEnd, n.Row)
}

// Tokens holds everything a scan produced, in scan order (row, then column).
type Tokens struct {
	Parts   []EnginePart
	Numbers []PartNumber
}

// Gears returns the parts holding the gear symbol, in scan order.
func (t *Tokens) Gears() []EnginePart {
	var gears []EnginePart
	for _, p := range t.Parts {
		if p.IsGear() {
			gears = append(gears, p)
		}
	}
	return gears
}
