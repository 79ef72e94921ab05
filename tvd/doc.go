// Package tvd solves one-dimensional Total Variation Denoising under
// squared-error loss, exactly and in linear time.
//
// 🚀 What is TVD?
//
//	Given a noisy sequence y and a penalty λ ≥ 0, TVD finds the
//	piecewise-constant sequence x minimizing
//
//	    Σᵢ (xᵢ − yᵢ)²  +  λ · Σᵢ |xᵢ₊₁ − xᵢ|
//
//	Raising λ progressively merges neighboring runs, recovering step-like
//	structure from noise.  It's widely used in:
//	  • Changepoint and step detection in sensor streams
//	  • Baseline flattening in bio/chem signal processing
//	  • Piecewise-constant trend extraction in time series
//
// ✨ Key features:
//   - exact minimizer, single forward scan with bounded backtracking: O(n)
//   - deterministic tie-break policy (documented on Denoise): bit-identical
//     reruns across platforms
//   - λ = 0 is the identity; large λ collapses to the signal mean
//   - segment utilities (Segments, SegmentCount) and an Objective evaluator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tvdenoise/tvd"
//
//	x, err := tvd.Denoise(y, 1.5, nil) // nil opts ⇒ DefaultOptions()
//	if err != nil {
//	  // ErrNegativeLambda, ErrNonFiniteValue, ErrSignalTooLong, ...
//	}
//	runs := tvd.Segments(x)
//
// Performance:
//
//   - Time:   O(n) amortized (each position closes at most one segment)
//   - Memory: O(1) beyond the returned buffer
//
// See examples in example_test.go; penalty selection by cross-validation
// lives in the sibling package cv.
package tvd
