package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface required to resolve and read
// worklist sources.
type FS interface {
	// Stat follows symlinks, so a link to a directory reports a directory.
	Stat(name string) (fs.FileInfo, error)

	// Open returns the source for streaming into an archive entry.
	Open(name string) (fs.File, error)

	// ReadDir returns directory entries sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)
}
