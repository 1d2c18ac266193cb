// Package types defines the core data structures shared by the packaging
// pipeline: the worklist handed from the builder to the assembler, the
// archive destination type, the per-run pack result, and the filesystem
// interface both stages read sources through.
package types
