package vpk

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/filesystem"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/rs/zerolog"
)

// MaxDirectoryDepth bounds how deep directory expansion descends.
// Symlinked directories are never descended, see writeDirectory.
const MaxDirectoryDepth = 64

// Options configures an Assembler
type Options struct {
	// FS is where sources are read from. Defaults to the OS filesystem.
	FS types.FS

	// ExpandDirectories writes directory sources recursively. When false a
	// directory source is an entry failure.
	ExpandDirectories bool

	// DirectoryEntries writes an explicit dst/ entry for every expanded directory
	DirectoryEntries bool

	// NewWriter wraps the output file. Defaults to NewZipWriter.
	NewWriter WriterFactory
}

// DefaultOptions returns the options used by the command line tool
func DefaultOptions() Options {
	return Options{
		FS:                filesystem.NewOS(),
		ExpandDirectories: true,
		DirectoryEntries:  true,
		NewWriter:         NewZipWriter,
	}
}

// Assembler materializes a worklist as a VPK file
type Assembler struct {
	opts   Options
	logger zerolog.Logger
}

// NewAssembler creates an assembler, filling unset options with defaults
func NewAssembler(opts Options) *Assembler {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.NewWriter == nil {
		opts.NewWriter = NewZipWriter
	}
	return &Assembler{
		opts:   opts,
		logger: logging.GetLogger("vpk.Assembler"),
	}
}

// Assemble writes a worklist to outputPath with the default options
func Assemble(worklist types.Worklist, outputPath string) (*types.PackResult, error) {
	return NewAssembler(DefaultOptions()).Assemble(worklist, outputPath)
}

// run holds the mutable state of a single Assemble call
type run struct {
	writer ArchiveWriter
	result *types.PackResult
	state  State
	index  int

	// output identifies the archive being written so expansion can skip it
	output os.FileInfo
}

// Assemble creates outputPath and writes one entry per worklist item in
// order. Entry failures are recorded in the result and do not stop the run.
// The returned error is non-nil only for fatal failures: the output could
// not be created (OUTPUT_CREATE) or the archive could not be finalized
// (ARCHIVE_FINALIZE).
func (a *Assembler) Assemble(worklist types.Worklist, outputPath string) (*types.PackResult, error) {
	done := logging.LogOperationStart(a.logger, "assemble")
	defer done()

	r := &run{
		result: &types.PackResult{
			Output:    outputPath,
			Timestamp: time.Now(),
		},
		state: StateIdle,
	}

	file, err := os.Create(outputPath)
	if err != nil {
		a.logger.Error().Err(err).Str("output", outputPath).Msg("Unable to create the vpk file")
		return nil, errors.Wrapf(err, errors.ErrOutputCreate, "unable to make the %s file", outputPath).
			WithDetail("output", outputPath)
	}
	a.transition(r, StateFileCreated)

	if info, err := file.Stat(); err == nil {
		r.output = info
	}
	r.writer = a.opts.NewWriter(file)

	for i, entry := range worklist {
		r.index = i
		a.transition(r, StateWriting)
		a.writeSource(r, entry.Source, entry.Destination, 0)
	}

	finalizeErr := r.writer.Close()
	if finalizeErr == nil {
		a.transition(r, StateFinalized)
	}

	closeErr := file.Close()
	if finalizeErr == nil && closeErr == nil {
		a.transition(r, StateClosed)
	}
	r.result.State = r.state.String()

	if finalizeErr != nil {
		return r.result, errors.Wrapf(finalizeErr, errors.ErrArchiveFinalize, "unable to finalize %s", outputPath).
			WithDetail("output", outputPath)
	}
	if closeErr != nil {
		return r.result, errors.Wrapf(closeErr, errors.ErrArchiveFinalize, "unable to close %s", outputPath).
			WithDetail("output", outputPath)
	}

	a.logger.Info().
		Str("output", outputPath).
		Int("written", r.result.Written).
		Int("failures", r.result.Failures).
		Msg("VPK written")

	return r.result, nil
}

func (a *Assembler) transition(r *run, next State) {
	a.logger.Trace().
		Str("from", r.state.String()).
		Str("to", next.String()).
		Int("index", r.index).
		Msg("Assembler state change")
	r.state = next
}

// writeSource writes a file entry, or a directory tree when source is a directory
func (a *Assembler) writeSource(r *run, source string, destination types.Destination, depth int) {
	info, err := a.opts.FS.Stat(source)
	if err != nil {
		a.fail(r, source, destination.String(), false, err, "cannot stat source")
		return
	}

	if !info.IsDir() {
		a.writeFile(r, source, destination, info)
		return
	}

	if !a.opts.ExpandDirectories {
		a.fail(r, source, destination.DirName(), true,
			errors.Newf(errors.ErrEntryWrite, "%s is a directory", source), "directory expansion disabled")
		return
	}

	if depth >= MaxDirectoryDepth {
		a.fail(r, source, destination.DirName(), true,
			errors.Newf(errors.ErrEntryWrite, "%s exceeds the maximum directory depth of %d", source, MaxDirectoryDepth),
			"directory too deep")
		return
	}

	a.writeDirectory(r, source, destination, info, depth)
}

func (a *Assembler) writeFile(r *run, source string, destination types.Destination, info os.FileInfo) {
	if r.output != nil && os.SameFile(info, r.output) {
		a.logger.Warn().
			Int("index", r.index).
			Str("source", source).
			Str("destination", destination.String()).
			Msg("Skipping the archive being written")
		return
	}

	src, err := a.opts.FS.Open(source)
	if err != nil {
		a.fail(r, source, destination.String(), false, err, "cannot open source")
		return
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			a.logger.Warn().Err(cerr).Str("source", source).Msg("Failed to close source")
		}
	}()

	w, err := r.writer.CreateHeader(fileHeader(destination.String(), info))
	if err != nil {
		a.fail(r, source, destination.String(), false, err, "cannot start entry")
		return
	}

	n, err := io.Copy(w, src)
	if err != nil {
		a.fail(r, source, destination.String(), false, err, "cannot copy source into entry")
		return
	}

	a.logger.Debug().
		Int("index", r.index).
		Str("source", source).
		Str("destination", destination.String()).
		Int64("size", n).
		Msg("Entry written")

	r.result.AddEntry(types.EntryResult{
		Source:      source,
		Destination: destination.String(),
		Size:        n,
	})
}

func (a *Assembler) writeDirectory(r *run, source string, destination types.Destination, info os.FileInfo, depth int) {
	if a.opts.DirectoryEntries {
		if _, err := r.writer.CreateHeader(dirHeader(destination.DirName(), info)); err != nil {
			a.fail(r, source, destination.DirName(), true, err, "cannot start directory entry")
			return
		}
		r.result.AddEntry(types.EntryResult{
			Source:      source,
			Destination: destination.DirName(),
			Directory:   true,
		})
	}

	children, err := a.opts.FS.ReadDir(source)
	if err != nil {
		a.fail(r, source, destination.DirName(), true, err, "cannot read directory")
		return
	}

	for _, child := range children {
		childSource := filepath.Join(source, child.Name())
		childDestination := destination.Child(child.Name())

		if child.Type()&fs.ModeSymlink != 0 {
			target, err := a.opts.FS.Stat(childSource)
			if err == nil && target.IsDir() {
				a.fail(r, childSource, childDestination.DirName(), true,
					errors.Newf(errors.ErrEntryWrite, "%s is a symlink to a directory", childSource),
					"symlinked directory not followed")
				continue
			}
		}

		a.writeSource(r, childSource, childDestination, depth+1)
	}
}

// fail records a non-fatal entry failure and logs it
func (a *Assembler) fail(r *run, source, destination string, dir bool, cause error, msg string) {
	err := errors.Wrapf(cause, errors.ErrEntryWrite, "%s: %s", msg, destination).
		WithDetail("source", source).
		WithDetail("destination", destination).
		WithDetail("index", r.index)

	a.logger.Error().
		Err(cause).
		Int("index", r.index).
		Str("source", source).
		Str("destination", destination).
		Msg(msg)

	r.result.AddEntry(types.EntryResult{
		Source:      source,
		Destination: destination,
		Directory:   dir,
		Err:         err,
	})
}
