package testutil

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"testing"
)

// ArchiveEntry is one entry of a VPK as seen by a standard zip reader
type ArchiveEntry struct {
	Name    string
	Method  uint16
	Mode    os.FileMode
	Content string
}

// ReadArchive reads every entry of the archive at path. Names that the
// reader flags as insecure (such as "../x") are still returned.
func ReadArchive(t *testing.T, path string) []ArchiveEntry {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		t.Fatalf("Failed to open archive %s: %v", path, err)
	}
	if r == nil {
		t.Fatalf("No reader for archive %s", path)
	}
	defer func() { _ = r.Close() }()

	var entries []ArchiveEntry
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("Failed to read entry %s: %v", f.Name, err)
		}

		entries = append(entries, ArchiveEntry{
			Name:    f.Name,
			Method:  f.Method,
			Mode:    f.Mode(),
			Content: string(data),
		})
	}
	return entries
}

// ArchiveNames returns the entry names of the archive at path, in order
func ArchiveNames(t *testing.T, path string) []string {
	t.Helper()
	entries := ReadArchive(t, path)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
