// Package testutil holds the shared harness for end-to-end tests that run
// the app against schematic and run files on disk.
package testutil
