// Package ui reports pack runs on the command line as styled terminal
// output, plain text or JSON.
package ui

import (
	"io"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/json"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/terminal"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/text"
)

// Renderer reports the outcome of a pack run
type Renderer interface {
	// RenderResult writes one line per entry and a closing summary
	RenderResult(result *types.PackResult) error

	// RenderError reports a fatal error. The text formats write it to the
	// error stream; JSON writes an error document to the output so
	// consumers always read exactly one document.
	RenderError(err error) error
}

// NewRenderer creates the renderer for format. Results go to out and
// human-readable errors to errOut. FormatAuto is resolved against out.
func NewRenderer(format Format, out, errOut io.Writer) (Renderer, error) {
	switch format.Resolve(out) {
	case FormatTerminal:
		return terminal.New(out, errOut), nil
	case FormatText:
		return text.New(out, errOut), nil
	case FormatJSON:
		return json.New(out), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "no renderer for format %v", format)
	}
}
