// Package json writes pack results and errors as indented JSON documents
package json

import (
	"encoding/json"
	"io"

	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/errors"
	"github.com/Rusty-VitaSDK/vita-pack-vpk/pkg/types"
)

// Renderer encodes one document per call
type Renderer struct {
	enc *json.Encoder
}

func New(w io.Writer) *Renderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}
}

func (r *Renderer) RenderResult(result *types.PackResult) error {
	return r.enc.Encode(result)
}

// failure is the document written for a fatal error
type failure struct {
	Error    string                 `json:"error"`
	Code     errors.ErrorCode       `json:"code"`
	ExitCode int                    `json:"exit_code"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

func (r *Renderer) RenderError(err error) error {
	return r.enc.Encode(failure{
		Error:    err.Error(),
		Code:     errors.GetErrorCode(err),
		ExitCode: errors.ExitCode(err),
		Details:  errors.GetErrorDetails(err),
	})
}
