package types

import (
	"strings"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
)

// Destination is an entry path inside the archive. It is kept verbatim:
// no cleaning, no leading-slash stripping, separators untouched.
type Destination string

// NewDestination validates a raw destination string. Only the empty string
// and strings carrying NUL bytes are rejected.
func NewDestination(raw string) (Destination, error) {
	if raw == "" {
		return "", errors.New(errors.ErrInvalidInput, "archive destination cannot be empty")
	}
	if strings.Contains(raw, "\x00") {
		return "", errors.Newf(errors.ErrInvalidInput, "archive destination %q contains null bytes", raw)
	}
	return Destination(raw), nil
}

// String returns the destination as written into the archive
func (d Destination) String() string {
	return string(d)
}

// Child returns the destination of a file nested under d. rel must be slash
// separated. A trailing slash on d is not doubled.
func (d Destination) Child(rel string) Destination {
	base := strings.TrimSuffix(string(d), "/")
	if rel == "" {
		return Destination(base)
	}
	return Destination(base + "/" + rel)
}

// DirName returns the directory-entry form of d, which always ends in a slash
func (d Destination) DirName() string {
	if strings.HasSuffix(string(d), "/") {
		return string(d)
	}
	return string(d) + "/"
}
