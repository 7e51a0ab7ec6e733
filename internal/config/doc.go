// Package config defines the format-agnostic model of a run file, along
// with the Loader interface for reading it from a concrete format.
//
// A run file lists the schematics to analyse and, per schematic, which
// aggregation to compute and optionally which value to expect. The HCL
// implementation lives in the hclconfig package.
package config
