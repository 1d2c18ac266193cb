// Package paths validates the raw path strings that arrive at the command
// line boundary before they reach the packaging core.
//
// # Input files
//
// The metadata (--sfo) and executable (--eboot) arguments must name
// existing regular files:
//
//	if err := paths.ValidateInputFile(fs, sfo); err != nil {
//	    return err // MISSING_INPUT or INVALID_INPUT
//	}
//
// # Add tokens
//
// Each --add value must have the lexical shape src=dst: it contains at least
// one '=' and is at least three bytes long. Only the shape is checked here;
// source existence is checked when the worklist is built.
package paths
