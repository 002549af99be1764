package ode

import "errors"

// Domain errors for solve orchestration. The numerical core itself never
// returns errors for degenerate physics: a coincident-body singularity
// surfaces as Inf/NaN in the trajectory data, not as an error value.
var (
	// ErrInvalidDomain indicates a time domain with tn <= t0 or a
	// non-positive step count.
	ErrInvalidDomain = errors.New("ode: invalid time domain")

	// ErrDimensionMismatch indicates an initial state whose length does not
	// match the system dimension.
	ErrDimensionMismatch = errors.New("ode: state dimension mismatch")

	// ErrCanceled indicates a context-aware solve was interrupted.
	ErrCanceled = errors.New("ode: solve canceled by context")
)
