package constituents

import (
	"errors"
	"fmt"
)

// Batch-level failures. Only these two abort a whole merge run; everything
// else is isolated to the offending snapshot file.
var (
	// ErrMissingTable reports that the persisted constituents table does not
	// exist. The merge engine never fabricates an initial table.
	ErrMissingTable = errors.New("constituents table not found")

	// ErrNoSnapshots reports that no pending snapshot files were discovered.
	ErrNoSnapshots = errors.New("no snapshot files found")
)

// DateFormatError reports a snapshot whose observation date cannot be
// resolved, neither from its content nor from its file name.
type DateFormatError struct {
	Input  string // the text that failed to parse
	Reason string
}

func (e *DateFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot resolve date from %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("cannot resolve date from %q", e.Input)
}

// SchemaError reports a snapshot that does not expose a column declared as
// required by its source schema.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found in snapshot", e.Column)
}

// ParseError reports a holding value that is not numeric after stripping the
// vendor decorations (%, $, thousands separators).
type ParseError struct {
	Ticker string
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q for ticker %s: %v", e.Column, e.Value, e.Ticker, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
