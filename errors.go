package radial

import "errors"

// Errors returned by the Kepler solver and the synthesis functions. Call
// sites wrap them with the offending values, so test with errors.Is.
var (
	// ErrInvalidParameter denotes an orbital element outside its domain of
	// validity, e.g. a non elliptical eccentricity or a non positive period.
	ErrInvalidParameter = errors.New("radial: invalid parameter")
	// ErrNoConvergence denotes a Kepler equation solve which reached its
	// iteration cap before the requested tolerance.
	ErrNoConvergence = errors.New("radial: kepler solver did not converge")
)
