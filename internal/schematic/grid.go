package schematic

import (
	"fmt"
	"io"
	"strings"
)

// Separator is the filler character of a schematic. It is neither a digit
// nor a symbol.
const Separator = '.'

// Grid is an ordered sequence of character rows. Rows need not have the
// same length; every row is scanned on its own.
type Grid struct {
	rows [][]rune
}

// NewGrid builds a grid from already split rows.
func NewGrid(rows ...string) Grid {
	g := Grid{rows: make([][]rune, 0, len(rows))}
	for _, row := range rows {
		g.rows = append(g.rows, []rune(row))
	}
	return g
}

// ParseGrid splits text into rows on the newline character. A trailing
// carriage return on a row is dropped, as is the empty row produced by a
// final newline.
func ParseGrid(text string) Grid {
	if text == "" {
		return Grid{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return NewGrid(lines...)
}

// ReadGrid reads the whole of r and parses it with ParseGrid.
func ReadGrid(r io.Reader) (Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read schematic: %w", err)
	}
	return ParseGrid(string(data)), nil
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of row y in characters, or 0 when y is out of range.
func (g Grid) Width(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// Row returns row y. The returned slice must not be modified.
func (g Grid) Row(y int) []rune {
	if y < 0 || y >= len(g.rows) {
		return nil
	}
	return g.rows[y]
}

// String renders the grid back into newline separated text.
func (g Grid) String() string {
	var sb strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// IsSymbol reports whether c is an engine part symbol: anything that is
// neither a digit nor the separator.
func IsSymbol(c rune) bool {
	return !IsDigit(c) && c != Separator
}
