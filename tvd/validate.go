// Package tvd - validation helpers for the solver entry point.
//
// Design principles (shared across the library):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - All checks run before any work begins; either the full correct output
//     is produced or nothing is.
package tvd

import "math"

// validateArgs verifies the (y, λ, opts) triple against the solver contract.
//
// Contract:
//   - λ must be finite and ≥ 0.
//   - len(y) must not exceed MaxSignalLen.
//   - every y value must be finite (NaN/±Inf rejected up-front rather than
//     producing undefined output).
//   - opts.Algo must be a defined Algorithm.
//
// Complexity: O(n) time (finite-value scan), O(1) space.
func validateArgs(y []float64, lambda float64, opts Options) error {
	// Stage 1: penalty sanity.
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return ErrNonFiniteValue
	}
	if lambda < 0 {
		return ErrNegativeLambda
	}

	// Stage 2: size ceiling.
	if len(y) > MaxSignalLen {
		return ErrSignalTooLong
	}

	// Stage 3: finite-value scan.
	var v float64
	for _, v = range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteValue
		}
	}

	// Stage 4: algorithm selector.
	if opts.Algo != DirectSquaredError {
		return ErrUnsupportedAlgorithm
	}

	return nil
}
