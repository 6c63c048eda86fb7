package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrMalformedGrid is wrapped by every grid validation failure.
var ErrMalformedGrid = errors.New("maze: malformed grid")

// Sentinel errors for grid parsing. Each wraps ErrMalformedGrid.
var (
	// ErrEmptyGrid indicates the input has no rows or only empty rows.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = fmt.Errorf("%w: missing start marker", ErrMalformedGrid)
	// ErrMissingEnd indicates no end marker was found.
	ErrMissingEnd = fmt.Errorf("%w: missing end marker", ErrMalformedGrid)
	// ErrDuplicateStart indicates more than one start marker under MarkerReject.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start marker", ErrMalformedGrid)
	// ErrDuplicateEnd indicates more than one end marker under MarkerReject.
	ErrDuplicateEnd = fmt.Errorf("%w: more than one end marker", ErrMalformedGrid)
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("maze: invalid option supplied")

// MarkerError reports a repeated start or end marker.
// It unwraps to ErrDuplicateStart or ErrDuplicateEnd.
type MarkerError struct {
	Kind   error           // ErrDuplicateStart or ErrDuplicateEnd
	Symbol rune            // the repeated marker
	First  grid.Coordinate // first occurrence, row-major
	Second grid.Coordinate // the occurrence that triggered the error
}

// Error implements error.
func (e *MarkerError) Error() string {
	return fmt.Sprintf("%v: %q at %v and %v", e.Kind, e.Symbol, e.First, e.Second)
}

// Unwrap exposes Kind to errors.Is.
func (e *MarkerError) Unwrap() error {
	return e.Kind
}
