package glider

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for out of range parameters such as a
	// non-positive chord or a camber position outside (0,1).
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateSection is returned for cross-sections with no area or
	// repeated points.
	ErrDegenerateSection = errors.New("degenerate section")
	// ErrMismatchedSectionTopology is returned when adjacent loft sections
	// have different point counts.
	ErrMismatchedSectionTopology = errors.New("mismatched section topology")
)

// InvalidParam returns an error wrapping ErrInvalidParameter.
func InvalidParam(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
