// Package cv selects a Total Variation Denoising penalty by k-fold
// cross-validation over a grid of candidates.
//
// 🚀 What does it do?
//
//	For each candidate λ, the signal is split into deterministic
//	round-robin folds; each fold's held-in part is denoised with
//	tvd.Denoise, the held-out values are predicted by piecewise-linear
//	interpolation over the held-in index positions, and the prediction
//	error is aggregated into a per-λ mean and standard error.  Two picks
//	are reported:
//	  • LambdaMin   - the λ with the smallest mean out-of-fold loss
//	  • LambdaOneSE - the largest λ within one standard error of that
//	    minimum (the "1-SE rule": prefer the simpler, smoother fit)
//
// ✨ Key features:
//   - deterministic folds (index i → fold i%k), reproducible end to end
//   - bounded parallel fan-out over (λ, fold) pairs: same Result for any
//     worker count
//   - log-spaced default grid 10⁻²..10³ (51 points)
//   - solver consumed purely as a black box; its errors carry (λ, fold)
//     context for fail-fast diagnosis
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tvdenoise/cv"
//
//	res, err := cv.SelectLambda(y, nil) // defaults: 51-point grid, 10 folds
//	if err != nil {
//	  // ErrBadFoldCount, ErrBadGridValue, or a wrapped tvd sentinel
//	}
//	x, _ := tvd.Denoise(y, res.LambdaOneSE, nil)
//
// Performance:
//
//   - |grid| · folds independent solver calls, each O(n)
//   - parallel across Workers goroutines; Workers=1 is the sequential
//     reference behavior
//
// See examples in example_test.go; the solver contract lives in the
// sibling package tvd.
package cv
