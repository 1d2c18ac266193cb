package worklist

import (
	"strings"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/filesystem"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/logging"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/rs/zerolog"
)

// TokenSeparator splits an add token into source and destination
const TokenSeparator = "="

// Builder resolves worklist entries against a filesystem
type Builder struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewBuilder creates a builder reading from fs, or the OS filesystem when fs is nil
func NewBuilder(fs types.FS) *Builder {
	if fs == nil {
		fs = filesystem.NewOS()
	}
	return &Builder{
		fs:     fs,
		logger: logging.GetLogger("worklist.Builder"),
	}
}

// Build produces the ordered worklist: metadata, executable, then one entry
// per token. It fails fast on the first source that does not exist.
func (b *Builder) Build(metadataPath, executablePath string, extraTokens []string) (types.Worklist, error) {
	worklist := make(types.Worklist, 0, len(extraTokens)+2)

	metadata, err := b.Entry(metadataPath, types.MetadataDestination)
	if err != nil {
		return nil, err
	}
	worklist = append(worklist, metadata)

	executable, err := b.Entry(executablePath, types.ExecutableDestination)
	if err != nil {
		return nil, err
	}
	worklist = append(worklist, executable)

	for _, token := range extraTokens {
		entry, err := b.ParseEntry(token)
		if err != nil {
			return nil, err
		}
		worklist = append(worklist, entry)
	}

	b.logger.Debug().
		Int("entries", len(worklist)).
		Strs("destinations", worklist.Destinations()).
		Msg("Worklist built")

	return worklist, nil
}

// ParseEntry splits a src=dst token and builds its entry
func (b *Builder) ParseEntry(token string) (types.WorklistEntry, error) {
	source, rawDestination, err := SplitToken(token)
	if err != nil {
		return types.WorklistEntry{}, err
	}

	destination, err := types.NewDestination(rawDestination)
	if err != nil {
		return types.WorklistEntry{}, errors.Wrapf(err, errors.ErrInvalidInput, "invalid add token %q", token).
			WithDetail("token", token)
	}

	return b.Entry(source, destination)
}

// Entry binds source to destination after checking that source exists
func (b *Builder) Entry(source string, destination types.Destination) (types.WorklistEntry, error) {
	if source == "" {
		return types.WorklistEntry{}, errors.New(errors.ErrMissingInput, "source path is empty").
			WithDetail("source", source).
			WithDetail("destination", destination.String())
	}

	if _, err := b.fs.Stat(source); err != nil {
		b.logger.Error().
			Str("source", source).
			Str("destination", destination.String()).
			Msg("Given file or folder doesn't exist")
		return types.WorklistEntry{}, errors.Wrapf(err, errors.ErrMissingInput,
			"given file or folder doesn't exist: %s", source).
			WithDetail("source", source).
			WithDetail("destination", destination.String())
	}

	return types.WorklistEntry{
		Source:      source,
		Destination: destination,
	}, nil
}

// SplitToken splits token on its first '='. Anything after that, including
// further '=' characters, is the destination.
func SplitToken(token string) (source, destination string, err error) {
	source, destination, found := strings.Cut(token, TokenSeparator)
	if !found {
		return "", "", errors.Newf(errors.ErrInvalidInput, "add token %q has no %q separator", token, TokenSeparator).
			WithDetail("token", token)
	}
	return source, destination, nil
}
