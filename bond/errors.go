package bond

import "errors"

var (
	// ErrInvalidInput reports a violated precondition (non-positive par or
	// frequency, negative tenor, out-of-range accrued fraction, per-period
	// rate at or below -100%).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoConvergence reports that the yield solver exhausted its iteration
	// budget without establishing or refining a root bracket.
	ErrNoConvergence = errors.New("no convergence")
)
