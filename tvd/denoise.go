// Package tvd - the exact direct solver for 1-D Total Variation Denoising.
//
// This file provides the canonical entry point Denoise and the linear-time
// kernel behind it.
//
// Algorithm Outline (direct primal/dual scan):
//  1. Grow a candidate constant segment left-to-right, maintaining the
//     tightest lower (vMin) and upper (vMax) feasible segment values seen so
//     far, together with the accumulated residual pull against each bound
//     (uMin, uMax) and the positions where each bound was last refreshed
//     (kMinus, kPlus).
//  2. Absorbing the next point keeps both pulls inside the ±μ slack ⇒ the
//     segment can stay constant; refresh the violated bound when a pull
//     saturates its slack.
//  3. If the next point would push a pull past the opposite bound's slack,
//     the segment must end: commit positions up to the refresh point of the
//     violated bound at that bound's value, then restart the scan there.
//  4. At the end of the signal, close the open segment at the value that
//     balances its residual pull to zero, or at the violated bound if one
//     is pinned.
//
// Each position triggers at most one segment closure, so total work is O(n)
// amortized with O(1) state beyond the output buffer.
package tvd

// Denoise computes the exact minimizer of
//
//	Σᵢ (xᵢ − yᵢ)² + λ · Σᵢ |xᵢ₊₁ − xᵢ|
//
// over all sequences x of the same length as y, and returns it as a fresh
// slice (never aliasing y).
//
// Contracts:
//   - λ must be finite and ≥ 0 (ErrNegativeLambda / ErrNonFiniteValue).
//   - y values must be finite (ErrNonFiniteValue).
//   - len(y) ≤ MaxSignalLen (ErrSignalTooLong).
//   - opts may be nil ⇒ DefaultOptions(); opts.Algo must be a defined
//     Algorithm (ErrUnsupportedAlgorithm).
//
// Behavior highlights:
//   - λ = 0 returns a copy of y exactly.
//   - len(y) = 0 returns an empty slice; len(y) = 1 returns the single value.
//   - The output is piecewise constant; larger λ yields fewer, larger runs,
//     collapsing to the mean of y once λ is large enough.
//
// Determinism (tie-break policy): jump tests use strict inequalities, so an
// exact tie in the dual bounds extends the current segment instead of
// closing it; at the end of the scan the lower-bound closure is checked
// before the upper-bound one. Repeated calls on identical input produce
// bit-identical output on every platform.
//
// Complexity: O(n) time amortized, O(1) auxiliary space beyond the output.
// Pure function: no global state, safe for concurrent callers.
func Denoise(y []float64, lambda float64, opts *Options) ([]float64, error) {
	// Stage 1: resolve options and validate the full contract up-front.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateArgs(y, lambda, o); err != nil {
		return nil, err
	}

	// Stage 2: trivial lengths (no variation term is defined for n ≤ 1).
	n := len(y)
	if n == 0 {
		return []float64{}, nil
	}
	if n == 1 {
		return []float64{y[0]}, nil
	}

	// Stage 3: linear-time kernel.
	return denoiseDirect(y, lambda), nil
}

// denoiseDirect is the single-pass kernel. It runs the ½‖x−y‖² + μ·TV
// recursion with μ = λ/2, which minimizes the contract objective
// Σ(x−y)² + λ·TV exactly (the two objectives differ by the constant
// factor 2 once the slack is halved).
//
// Preconditions (enforced by Denoise): len(y) ≥ 2, λ ≥ 0, finite inputs.
func denoiseDirect(y []float64, lambda float64) []float64 {
	n := len(y)
	x := make([]float64, n)
	mu := 0.5 * lambda // dual slack per boundary under the Σ(x−y)² scaling

	var (
		k      int            // current scan position
		k0     int            // first position not yet committed to x
		kMinus int            // position where vMin was last refreshed
		kPlus  int            // position where vMax was last refreshed
		vMin   = y[0] - mu    // lowest feasible value for the open segment
		vMax   = y[0] + mu    // highest feasible value for the open segment
		uMin   = mu           // residual pull measured against vMin
		uMax   = -mu          // residual pull measured against vMax
		twoMu  = lambda       // 2μ, the full width of the feasible interval
	)

	for {
		// Boundary handling: the scan has reached the last position; close
		// the remaining open segment(s). Checking uMin first is the
		// documented tie-break (lower-bound closure wins exact ties).
		for k == n-1 {
			switch {
			case uMin < 0:
				// The lower bound cannot absorb the tail: commit vMin up to
				// its refresh point and restart just after it.
				for k0 <= kMinus {
					x[k0] = vMin
					k0++
				}
				k, kMinus = k0, k0
				vMin = y[k]
				uMin = mu
				uMax = y[k] + mu - vMax
			case uMax > 0:
				for k0 <= kPlus {
					x[k0] = vMax
					k0++
				}
				k, kPlus = k0, k0
				vMax = y[k]
				uMax = -mu
				uMin = y[k] - mu - vMin
			default:
				// Residual pull balances inside the slack: the whole tail is
				// one segment at the pull-neutral value.
				v := vMin + uMin/float64(k-k0+1)
				for k0 <= k {
					x[k0] = v
					k0++
				}

				return x
			}
		}

		switch {
		case y[k+1]+uMin < vMin-mu:
			// Extending would drag the pull below the lower slack: negative
			// jump. Commit vMin through its refresh point, restart there.
			for k0 <= kMinus {
				x[k0] = vMin
				k0++
			}
			k, kMinus, kPlus = k0, k0, k0
			vMin = y[k]
			vMax = y[k] + twoMu
			uMin, uMax = mu, -mu
		case y[k+1]+uMax > vMax+mu:
			// Symmetric positive jump via the upper bound.
			for k0 <= kPlus {
				x[k0] = vMax
				k0++
			}
			k, kMinus, kPlus = k0, k0, k0
			vMax = y[k]
			vMin = y[k] - twoMu
			uMin, uMax = mu, -mu
		default:
			// Absorb y[k+1] into the open segment; refresh a bound when its
			// pull saturates the slack (non-strict, per the tie policy).
			k++
			uMin += y[k] - vMin
			uMax += y[k] - vMax
			if uMin >= mu {
				vMin += (uMin - mu) / float64(k-k0+1)
				uMin = mu
				kMinus = k
			}
			if uMax <= -mu {
				vMax += (uMax + mu) / float64(k-k0+1)
				uMax = -mu
				kPlus = k
			}
		}
	}
}
