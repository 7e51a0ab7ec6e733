// Package schematic defines the shared model of an engine schematic: the
// character grid itself and the two token kinds extracted from it, part
// numbers and engine parts.
//
// The package is pure. It performs no logging and no I/O beyond reading a
// grid from a caller-supplied io.Reader.
package schematic
