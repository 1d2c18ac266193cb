package paths

import (
	"strings"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
)

// MinAddTokenLength is the shortest possible src=dst token
const MinAddTokenLength = 3

// ValidatePath performs basic validation on a path string.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateInputFile checks that path names an existing regular file.
// A path that does not exist is MISSING_INPUT; one that exists but is not a
// regular file is INVALID_INPUT.
func ValidateInputFile(fs types.FS, path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	info, err := fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrMissingInput, "file doesn't exist: %s", path).
			WithDetail("path", path)
	}

	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrInvalidInput, "given path is not a valid file: %s", path).
			WithDetail("path", path)
	}

	return nil
}

// ValidateAddToken checks the lexical shape of a src=dst token
func ValidateAddToken(token string) error {
	if strings.Contains(token, "=") && len(token) >= MinAddTokenLength {
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput,
		"need <src=dst>, with src the source file or directory and dst its path in the vpk archive, got %q", token).
		WithDetail("token", token)
}

// ValidateAddTokens validates every token, stopping at the first bad one
func ValidateAddTokens(tokens []string) error {
	for _, token := range tokens {
		if err := ValidateAddToken(token); err != nil {
			return err
		}
	}
	return nil
}
