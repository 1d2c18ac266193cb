// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/styles"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/ui/text"
)

// Renderer provides styled terminal output
type Renderer struct {
	out    io.Writer
	errOut io.Writer
}

func New(out, errOut io.Writer) *Renderer {
	return &Renderer{out: out, errOut: errOut}
}

// RenderResult renders a pack result with styled entry lines
func (r *Renderer) RenderResult(result *types.PackResult) error {
	for _, e := range result.Entries {
		if _, err := fmt.Fprintln(r.out, entryLine(e)); err != nil {
			return err
		}
	}

	style := "Success"
	if !result.Complete() {
		style = "Warning"
	}
	_, err := fmt.Fprintln(r.out, styles.Render(style, text.Summary(result)))
	return err
}

func entryLine(e types.EntryResult) string {
	dst := styles.Render("Destination", e.Destination)
	src := styles.Render("FilePath", e.Source)
	arrow := styles.Render("Muted", "←")

	switch {
	case e.Failed():
		return fmt.Sprintf("%s %s %s %s\n    %s",
			styles.Render("Error", "✗"), dst, arrow, src, styles.Render("Error", e.Error))
	case e.Directory:
		return fmt.Sprintf("%s %s", styles.Render("Success", "✓"), dst)
	default:
		return fmt.Sprintf("%s %s %s %s %s",
			styles.Render("Success", "✓"), dst, arrow, src,
			styles.Render("Size", fmt.Sprintf("(%d bytes)", e.Size)))
	}
}

// RenderError writes the error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.errOut, styles.Render("Error", "Error: "+err.Error()))
	return werr
}
