// Package scanner walks a schematic grid and extracts its tokens: part
// numbers (maximal digit runs within a row) and engine parts (symbol cells).
package scanner

import (
	"errors"
	"strconv"

	"github.com/specialistvlad/schematicgo/internal/schematic"
)

// parseState is the open digit run of the row being scanned. A nil state
// means no run is in progress.
type parseState struct {
	digits      []rune
	columnStart int
}

// close converts the run into a part number ending at columnEnd (exclusive).
func (s *parseState) close(columnEnd, row int) (schematic.PartNumber, error) {
	value, err := strconv.ParseUint(string(s.digits), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return schematic.PartNumber{}, &schematic.OverflowError{
				Digits: string(s.digits),
				Column: s.columnStart,
				Row:    row,
			}
		}
		return schematic.PartNumber{}, err
	}
	return schematic.PartNumber{
		Value:       value,
		ColumnStart: s.columnStart,
		ColumnEnd:   columnEnd,
		Row:         row,
	}, nil
}

// Scan produces every engine part and part number of g in scan order. It
// stops at the first digit run that overflows uint64.
func Scan(g schematic.Grid) (*schematic.Tokens, error) {
	tokens := &schematic.Tokens{}
	for y := 0; y < g.Height(); y++ {
		if err := scanRow(tokens, g.Row(y), y); err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

func scanRow(tokens *schematic.Tokens, row []rune, y int) error {
	var state *parseState

	for x, c := range row {
		if schematic.IsDigit(c) {
			if state == nil {
				state = &parseState{columnStart: x}
			}
			state.digits = append(state.digits, c)
			continue
		}

		// A run ends before the character that ended it is classified.
		if state != nil {
			n, err := state.close(x, y)
			if err != nil {
				return err
			}
			tokens.Numbers = append(tokens.Numbers, n)
			state = nil
		}

		if schematic.IsSymbol(c) {
			tokens.Parts = append(tokens.Parts, schematic.EnginePart{Value: c, Column: x, Row: y})
		}
	}

	if state != nil {
		n, err := state.close(len(row), y)
		if err != nil {
			return err
		}
		tokens.Numbers = append(tokens.Numbers, n)
	}
	return nil
}
