// Package vpk writes a worklist out as a VPK package: a zip container whose
// entries are all stored without compression and carry Unix permission
// bits 0755.
//
// # Run lifecycle
//
// A single Assemble call moves through
//
//	Idle -> FileCreated -> Writing -> Finalized -> Closed
//
// and never goes back. Failing to create the output file is fatal and
// nothing is written. Failing to write one entry is not: the failure is
// logged, recorded in the PackResult, and the next entry is attempted, so
// the resulting package may be incomplete. Failing to flush the central
// directory is fatal.
//
// # Directory sources
//
// When a source is a directory and expansion is enabled, the directory is
// written as dst/ followed by every entry below it as dst/<relative-path>,
// in lexical order. The worklist itself is not modified.
//
// Destinations are never cleaned. Leading slashes, backslashes and ".."
// segments end up in the archive exactly as given; entries sharing a
// destination are both written and the reader decides which one wins.
package vpk
