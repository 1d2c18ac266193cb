// Package pack implements the pack command: validate inputs, build the
// ordered worklist and write it as a VPK archive.
package pack
