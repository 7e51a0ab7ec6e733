package aggregate

import "github.com/specialistvlad/schematicgo/internal/schematic"

// Index groups part numbers by row, preserving scan order within a row.
type Index struct {
	byRow map[int][]schematic.PartNumber
}

// NewIndex builds an index over numbers. The slice is not retained.
func NewIndex(numbers []schematic.PartNumber) *Index {
	ix := &Index{byRow: make(map[int][]schematic.PartNumber)}
	for _, n := range numbers {
		ix.byRow[n.Row] = append(ix.byRow[n.Row], n)
	}
	return ix
}

// Adjacent returns every part number touching p, in scan order. Each number
// appears at most once however many of its cells touch p.
func (ix *Index) Adjacent(p schematic.EnginePart) []schematic.PartNumber {
	var found []schematic.PartNumber
	for y := p.Row - 1; y <= p.Row+1; y++ {
		for _, n := range ix.byRow[y] {
			if n.AdjacentTo(p) {
				found = append(found, n)
			}
		}
	}
	return found
}

// partIndex is the symbol-side counterpart of Index.
type partIndex map[int][]schematic.EnginePart

func newPartIndex(parts []schematic.EnginePart) partIndex {
	ix := make(partIndex)
	for _, p := range parts {
		ix[p.Row] = append(ix[p.Row], p)
	}
	return ix
}

// touches reports whether any part is adjacent to n.
func (ix partIndex) touches(n schematic.PartNumber) bool {
	for y := n.Row - 1; y <= n.Row+1; y++ {
		for _, p := range ix[y] {
			if n.AdjacentTo(p) {
				return true
			}
		}
	}
	return false
}
