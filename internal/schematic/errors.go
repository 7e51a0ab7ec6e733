package schematic

import (
	"errors"
	"fmt"
)

// ErrNumericOverflow reports a value that does not fit the integer range
// used for part numbers and their aggregates.
var ErrNumericOverflow = errors.New("numeric overflow")

// OverflowError describes a digit run whose decimal value exceeds uint64.
// It matches ErrNumericOverflow under errors.Is.
type OverflowError struct {
	Digits string
	Column int
	Row    int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("part number %q at column %d, row %d: %v", e.Digits, e.Column, e.Row, ErrNumericOverflow)
}

// Is lets errors.Is match ErrNumericOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrNumericOverflow
}
