package geonode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by geonode nodes.
var (
	// ErrShapeMismatch is returned when vectorized parameter lists cannot be
	// broadcast against each other.
	ErrShapeMismatch = errors.New("geonode: parameter shape mismatch")

	// ErrEmptyInput is returned when a vectorized parameter has no values.
	ErrEmptyInput = errors.New("geonode: empty parameter list")

	// ErrResolution is returned when a generator is asked for fewer samples
	// than it can emit.
	ErrResolution = errors.New("geonode: invalid resolution")

	// ErrUnknownEnum is returned when an enumeration name cannot be parsed.
	ErrUnknownEnum = errors.New("geonode: unknown enumeration value")
)

// NamedLen is the length of one named parameter list.
type NamedLen struct {
	Name string
	Len  int
}

// ShapeError describes parameter lists whose lengths cannot be broadcast
// to a common row count.
type ShapeError struct {
	Rows       int        // row count implied by the longest list
	Mismatched []NamedLen // lists that are neither scalar nor Rows long
}

func (e *ShapeError) Error() string {
	parts := make([]string, len(e.Mismatched))
	for i, m := range e.Mismatched {
		parts[i] = fmt.Sprintf("%s has %d", m.Name, m.Len)
	}
	return fmt.Sprintf("geonode: parameter shape mismatch: want 1 or %d values, %s",
		e.Rows, strings.Join(parts, ", "))
}

// Unwrap makes errors.Is(err, ErrShapeMismatch) hold for a *ShapeError.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
