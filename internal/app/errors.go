package app

import "fmt"

// ExpectationError reports a schematic whose aggregate differs from the
// value its run file block expects.
type ExpectationError struct {
	Name     string
	Expected uint64
	Actual   uint64
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	return fmt.Sprintf("schematic %q: expected %d, got %d", e.Name, e.Expected, e.Actual)
}
