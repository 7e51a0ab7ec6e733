// Package aggregate correlates the tokens of a scanned schematic.
//
// Correlation needs the complete token set, so it always runs after the scan
// has finished. Part numbers are indexed by row; a gear only ever looks at
// its own row and the two rows around it.
//
// Gears are independent of each other, which lets an Aggregator evaluate
// them on several goroutines. The resulting sum does not depend on the
// number of workers.
package aggregate
