// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// One run reads every schematic the configuration names, scans it, computes
// the requested aggregation and renders the results. In watch mode the run
// repeats whenever one of the schematic files changes.
package app
