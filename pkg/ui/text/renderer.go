// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
)

// Renderer writes unstyled lines, suitable for pipes and logs
type Renderer struct {
	out    io.Writer
	errOut io.Writer
}

func New(out, errOut io.Writer) *Renderer {
	return &Renderer{out: out, errOut: errOut}
}

// RenderResult writes one line per entry followed by Summary
func (r *Renderer) RenderResult(result *types.PackResult) error {
	for _, e := range result.Entries {
		if _, err := fmt.Fprintln(r.out, EntryLine(e)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.out, Summary(result))
	return err
}

// EntryLine describes a single entry result
func EntryLine(e types.EntryResult) string {
	switch {
	case e.Failed():
		return fmt.Sprintf("FAILED %s <- %s: %s", e.Destination, e.Source, e.Error)
	case e.Directory:
		return fmt.Sprintf("added  %s", e.Destination)
	default:
		return fmt.Sprintf("added  %s <- %s (%d bytes)", e.Destination, e.Source, e.Size)
	}
}

// Summary is the closing line shared by the text and terminal renderers
func Summary(result *types.PackResult) string {
	if result.Complete() {
		return fmt.Sprintf("wrote %s: %d entries", result.Output, result.Written)
	}
	return fmt.Sprintf("wrote %s: %d entries, %d failed", result.Output, result.Written, result.Failures)
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.errOut, "Error: %v\n", err)
	return werr
}
