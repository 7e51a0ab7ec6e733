// Package hclconfig provides the HCL implementation of the config.Loader
// interface. It parses run files, evaluates their expressions against an
// `env` object holding the process environment, and translates the result
// into the format-agnostic config.Model.
//
// A run file looks like:
//
//	schematic "example" {
//	  path      = "${env.INPUT_DIR}/example.txt"
//	  aggregate = "gear_ratio"
//	  expect    = 467835
//	}
//
// Relative paths are resolved against the directory of the run file.
package hclconfig
