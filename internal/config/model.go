package config

// Model is the unified, format-agnostic representation of one or more run
// files.
type Model struct {
	Schematics []*Schematic
}

// Schematic is the format-agnostic representation of a `schematic` block.
type Schematic struct {
	Name string
	// Path is absolute, or relative to the working directory.
	Path string
	// Aggregate is empty when the block leaves the choice to the caller.
	Aggregate string
	// Expect is nil when the block declares no expected value.
	Expect *uint64
	// Source names the run file the block came from.
	Source string
}
