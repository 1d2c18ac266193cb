// Package testutil provides fixtures for testing vita-pack-vpk components.
//
// Key components:
//   - FileTree: declarative source trees on disk or in an afero memory fs
//   - ReadArchive: reads a produced VPK back with the standard zip reader
//   - Chdir: switches the working directory for one test
package testutil
