// Package cv - the cross-validated penalty selector.
//
// This file provides the canonical entry point SelectLambda:
// resolve options → validate → build folds once → fan out independent
// (λ, fold) evaluations → reduce to per-λ mean/SE → apply the 1-SE rule.
//
// Design principles:
//   - Deterministic: round-robin folds, fixed reduction order; the worker
//     count changes wall-clock time, never the result.
//   - Strict sentinels for selector preconditions; solver errors are
//     wrapped with (λ, fold) context and stay errors.Is-matchable.
//   - The Solver is consumed strictly as a black box via tvd.Denoise.
package cv

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tvdenoise/tvd"
)

// SelectLambda chooses a denoising penalty for y by k-fold cross-validated
// prediction error over a grid of candidates.
//
// For every (λ, fold) pair it solves the held-in subsequence (relative
// order preserved, treated as its own contiguous signal), predicts the
// held-out values by piecewise-linear interpolation over the held-in index
// positions (nearest-edge clamped beyond the training range), and scores
// the fold with the configured loss. Per-λ fold losses reduce to a mean and
// a standard error; the report names both the loss-minimizing λ and the
// most-regularized λ within one standard error of that minimum.
//
// Contracts:
//   - opts may be nil ⇒ DefaultOptions(); a nil Grid means "use
//     DefaultGrid()", while an explicitly empty Grid is ErrEmptyGrid.
//   - grid values must be finite and ≥ 0 (ErrBadGridValue).
//   - 2 ≤ folds ≤ len(y)/2 (ErrBadFoldCount), so every training side keeps
//     at least two points for interpolation.
//   - only SquaredError loss is defined (ErrUnsupportedLoss).
//   - solver precondition failures (e.g. non-finite y values) surface as
//     the tvd sentinel wrapped with the offending λ and fold for fail-fast
//     diagnosis; the sweep stops at the first error.
//
// Determinism: identical inputs give identical Results for any Workers
// value - each (λ, fold) cell is written independently into a preallocated
// matrix and reduced in grid order.
//
// Complexity: |grid| · folds solver calls, each O(n); reduction O(|grid| · folds).
func SelectLambda(y []float64, opts *Options) (*Result, error) {
	// Stage 1: resolve options against the documented defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.Grid == nil {
			o.Grid = DefaultGrid()
		}
		if o.Folds == 0 {
			o.Folds = DefaultFolds
		}
		if o.Workers <= 0 {
			o.Workers = DefaultOptions().Workers
		}
	}

	// Stage 2: selector preconditions (solver preconditions are the
	// solver's own business and surface from the first cell).
	if err := validateOptions(y, o); err != nil {
		return nil, err
	}

	// Stage 3: build the fold views once; they are shared read-only by
	// every λ.
	splits := makeFolds(y, o.Folds)

	// Stage 4: embarrassingly parallel fan-out over (λ, fold) cells,
	// bounded by the worker budget. Each cell owns exactly one slot of the
	// loss matrix, so no synchronization beyond the group is needed.
	losses := make([][]float64, len(o.Grid))
	for gi := range losses {
		losses[gi] = make([]float64, o.Folds)
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for gi := range o.Grid {
		for fi := range splits {
			gi, fi := gi, fi
			g.Go(func() error {
				loss, err := foldLoss(&splits[fi], o.Grid[gi], o.Loss)
				if err != nil {
					return fmt.Errorf("cv: lambda=%g fold=%d: %w", o.Grid[gi], fi, err)
				}
				losses[gi][fi] = loss

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 5: reduce fold losses to per-λ mean and standard error.
	res := &Result{
		Grid:       append([]float64(nil), o.Grid...),
		MeanLosses: make([]float64, len(o.Grid)),
		StdErrs:    make([]float64, len(o.Grid)),
	}
	sqrtFolds := math.Sqrt(float64(o.Folds))
	for gi := range o.Grid {
		mean, err := stats.Mean(losses[gi])
		if err != nil {
			return nil, fmt.Errorf("cv: aggregating lambda=%g: %w", o.Grid[gi], err)
		}
		sd, err := stats.StandardDeviationSample(losses[gi])
		if err != nil {
			return nil, fmt.Errorf("cv: aggregating lambda=%g: %w", o.Grid[gi], err)
		}
		res.MeanLosses[gi] = mean
		res.StdErrs[gi] = sd / sqrtFolds
	}

	// Stage 6: pick λ_min (first index on ties) and the 1-SE rule λ.
	minIdx := floats.MinIdx(res.MeanLosses)
	res.LambdaMin = res.Grid[minIdx]
	threshold := res.MeanLosses[minIdx] + res.StdErrs[minIdx]
	res.LambdaOneSE = res.LambdaMin
	for gi := range res.Grid {
		if res.MeanLosses[gi] <= threshold && res.Grid[gi] > res.LambdaOneSE {
			res.LambdaOneSE = res.Grid[gi]
		}
	}

	return res, nil
}

// foldLoss evaluates one (λ, fold) cell: solve held-in, predict held-out,
// score. Pure; safe to run concurrently with other cells.
func foldLoss(split *foldSplit, lambda float64, loss LossKind) (float64, error) {
	fit, err := tvd.Denoise(split.trainVal, lambda, nil)
	if err != nil {
		return 0, err
	}

	pred, err := predictAtPositions(split.trainPos, fit, split.testPos)
	if err != nil {
		return 0, err
	}

	switch loss {
	case SquaredError:
		var sse float64
		for i := range pred {
			d := pred[i] - split.testVal[i]
			sse += d * d
		}

		return sse, nil
	default:
		// Unreachable: validateOptions rejects unknown kinds up-front.
		return 0, ErrUnsupportedLoss
	}
}

// validateOptions checks selector preconditions without touching the
// solver's contract.
//
// Complexity: O(|grid|).
func validateOptions(y []float64, o Options) error {
	if len(o.Grid) == 0 {
		return ErrEmptyGrid
	}
	var lam float64
	for _, lam = range o.Grid {
		if math.IsNaN(lam) || math.IsInf(lam, 0) || lam < 0 {
			return ErrBadGridValue
		}
	}
	if o.Folds < 2 || o.Folds*2 > len(y) {
		return ErrBadFoldCount
	}
	if o.Loss != SquaredError {
		return ErrUnsupportedLoss
	}

	return nil
}
