// Package registry provides the glue between aggregation names and the Go
// code computing them.
//
// Run files and the -aggregate flag refer to aggregations by name (for
// example "gear_ratio"). Modules register a handler under each name during
// application startup; the app then resolves names through the Registry.
// Registering the same name twice is a programmer error and panics.
package registry
