package vpk

import (
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// EntryMode is the permission set on every file entry
const EntryMode os.FileMode = 0755

// DirectoryMode is the mode set on directory entries
const DirectoryMode = os.ModeDir | EntryMode

// ArchiveWriter is the streaming container writer the assembler drives.
// *zip.Writer satisfies it.
type ArchiveWriter interface {
	CreateHeader(fh *zip.FileHeader) (io.Writer, error)
	Close() error
}

// WriterFactory wraps the output file in an ArchiveWriter
type WriterFactory func(w io.Writer) ArchiveWriter

// NewZipWriter is the default WriterFactory
func NewZipWriter(w io.Writer) ArchiveWriter {
	return zip.NewWriter(w)
}

// fileHeader builds the stored, 0755 header for a regular file entry
func fileHeader(name string, info os.FileInfo) *zip.FileHeader {
	header := &zip.FileHeader{
		Name:   name,
		Method: zip.Store,
	}
	if info != nil {
		header.Modified = info.ModTime()
	}
	header.SetMode(EntryMode)
	return header
}

// dirHeader builds the header for a directory entry; name must end in '/'
func dirHeader(name string, info os.FileInfo) *zip.FileHeader {
	header := &zip.FileHeader{
		Name:   name,
		Method: zip.Store,
	}
	if info != nil {
		header.Modified = info.ModTime()
	}
	header.SetMode(DirectoryMode)
	return header
}
