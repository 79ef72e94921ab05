// Package tvdenoise is an exact, linear-time toolkit for one-dimensional
// Total Variation Denoising and data-driven penalty selection.
//
// 🚀 What is tvdenoise?
//
//	A small, deterministic library that recovers piecewise-constant signals
//	from noisy observations by solving
//
//	    minimize  Σᵢ (xᵢ − yᵢ)²  +  λ · Σᵢ |xᵢ₊₁ − xᵢ|
//
//	exactly, in a single forward pass with bounded backtracking: no
//	iterations, no convergence thresholds, no approximation.
//
// ✨ Why choose tvdenoise?
//
//   - Exact O(n) solver – the direct primal/dual algorithm, not ADMM/ISTA
//   - Deterministic – documented tie-break policy, bit-identical reruns
//   - Data-driven λ – k-fold cross-validation with the 1-SE rule
//   - Parallel sweeps – (λ, fold) fan-out bounded by a worker budget
//   - Pure functions – no global state, safe for concurrent callers
//
// Everything is organized under two subpackages:
//
//	tvd/ - the exact solver: Denoise, segment utilities, objective helper
//	cv/  - the selector: SelectLambda over a λ grid with k-fold CV
//
// Quick ASCII example:
//
//	noisy:    ▂▃▂▁▂▆▇▆▇▆▂▁▂▂▁      denoised (λ≈1):    ▂▂▂▂▂▇▇▇▇▇▁▁▁▁▁
//
//	three constant runs recovered, jump positions preserved exactly.
//
// Dive into tvd/doc.go and cv/doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/tvdenoise
package tvdenoise
