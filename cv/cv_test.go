package cv_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tvdenoise/cv"
	"github.com/katalvlaran/tvdenoise/tvd"
)

// noisySteps builds a deterministic multi-level step signal with seeded
// Gaussian noise: `levels` plateaus of length `width`.
func noisySteps(levels, width int, sigma float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	y := make([]float64, 0, levels*width)
	for l := 0; l < levels; l++ {
		for i := 0; i < width; i++ {
			y = append(y, float64(l)+rng.NormFloat64()*sigma)
		}
	}
	return y
}

// TestSelectLambda_EmptyGrid verifies an explicitly empty grid errors
// (a nil grid means "use the default" instead).
func TestSelectLambda_EmptyGrid(t *testing.T) {
	opts := cv.Options{Grid: []float64{}, Folds: 2}
	_, err := cv.SelectLambda(make([]float64, 10), &opts)
	assert.ErrorIs(t, err, cv.ErrEmptyGrid)
}

// TestSelectLambda_BadGridValues verifies negative and non-finite grid
// entries are rejected up-front.
func TestSelectLambda_BadGridValues(t *testing.T) {
	y := make([]float64, 10)

	opts := cv.Options{Grid: []float64{0.1, -1, 2}, Folds: 2}
	_, err := cv.SelectLambda(y, &opts)
	assert.ErrorIs(t, err, cv.ErrBadGridValue, "negative λ in grid")

	opts.Grid = []float64{0.1, math.NaN()}
	_, err = cv.SelectLambda(y, &opts)
	assert.ErrorIs(t, err, cv.ErrBadGridValue, "NaN λ in grid")

	opts.Grid = []float64{math.Inf(1)}
	_, err = cv.SelectLambda(y, &opts)
	assert.ErrorIs(t, err, cv.ErrBadGridValue, "+Inf λ in grid")
}

// TestSelectLambda_BadFoldCount verifies the fold-count bounds.
func TestSelectLambda_BadFoldCount(t *testing.T) {
	y := make([]float64, 10)
	grid := []float64{0.1, 1}

	opts := cv.Options{Grid: grid, Folds: 1}
	_, err := cv.SelectLambda(y, &opts)
	assert.ErrorIs(t, err, cv.ErrBadFoldCount, "folds=1 is not cross-validation")

	opts.Folds = 6 // 6*2 > 10: some training side would drop below 2 points
	_, err = cv.SelectLambda(y, &opts)
	assert.ErrorIs(t, err, cv.ErrBadFoldCount, "folds beyond len(y)/2")

	// The default fold count needs len(y) ≥ 20.
	_, err = cv.SelectLambda(make([]float64, 12), nil)
	assert.ErrorIs(t, err, cv.ErrBadFoldCount)
}

// TestSelectLambda_UnsupportedLoss verifies the reserved loss selector.
func TestSelectLambda_UnsupportedLoss(t *testing.T) {
	opts := cv.Options{Grid: []float64{1}, Folds: 2, Loss: cv.LossKind(9)}
	_, err := cv.SelectLambda(make([]float64, 10), &opts)
	assert.ErrorIs(t, err, cv.ErrUnsupportedLoss)
}

// TestSelectLambda_PropagatesSolverError verifies a solver precondition
// failure surfaces unchanged (errors.Is) and names the offending λ and
// fold for diagnosis.
func TestSelectLambda_PropagatesSolverError(t *testing.T) {
	y := noisySteps(2, 10, 0.1, 1)
	y[3] = math.NaN()

	opts := cv.Options{Grid: []float64{0.5}, Folds: 2, Workers: 1}
	_, err := cv.SelectLambda(y, &opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, tvd.ErrNonFiniteValue, "solver sentinel must survive wrapping")
	assert.Contains(t, err.Error(), "lambda=", "context must name the grid point")
	assert.Contains(t, err.Error(), "fold=", "context must name the fold")
}

// TestSelectLambda_StepSignalScenario runs the documentation scenario: a
// 9-level repeated step signal with injected Gaussian noise. Both picks
// must lie inside the grid and respect LambdaOneSE ≥ LambdaMin.
func TestSelectLambda_StepSignalScenario(t *testing.T) {
	y := noisySteps(9, 20, 0.3, 42)

	res, err := cv.SelectLambda(y, nil)
	require.NoError(t, err)

	require.Len(t, res.MeanLosses, len(res.Grid))
	require.Len(t, res.StdErrs, len(res.Grid))
	for gi := range res.Grid {
		assert.False(t, math.IsNaN(res.MeanLosses[gi]), "mean loss NaN at %d", gi)
		assert.GreaterOrEqual(t, res.StdErrs[gi], 0.0)
	}

	assert.GreaterOrEqual(t, res.LambdaOneSE, res.LambdaMin, "1-SE pick is the more regularized one")
	gridMin, gridMax := res.Grid[0], res.Grid[0]
	for _, lam := range res.Grid {
		gridMin = math.Min(gridMin, lam)
		gridMax = math.Max(gridMax, lam)
	}
	assert.GreaterOrEqual(t, res.LambdaMin, gridMin)
	assert.LessOrEqual(t, res.LambdaMin, gridMax)
	assert.GreaterOrEqual(t, res.LambdaOneSE, gridMin)
	assert.LessOrEqual(t, res.LambdaOneSE, gridMax)

	assert.Contains(t, res.Grid, res.LambdaMin, "LambdaMin must be a grid value")
	assert.Contains(t, res.Grid, res.LambdaOneSE, "LambdaOneSE must be a grid value")
}

// TestSelectLambda_WorkerCountInvariance verifies the parallel fan-out is
// purely a throughput knob: sequential and parallel sweeps agree exactly.
func TestSelectLambda_WorkerCountInvariance(t *testing.T) {
	y := noisySteps(5, 12, 0.4, 7)
	grid := []float64{0.01, 0.1, 1, 10, 100}

	seqOpts := cv.Options{Grid: grid, Folds: 5, Workers: 1}
	seq, err := cv.SelectLambda(y, &seqOpts)
	require.NoError(t, err)

	parOpts := cv.Options{Grid: grid, Folds: 5, Workers: 8}
	par, err := cv.SelectLambda(y, &parOpts)
	require.NoError(t, err)

	assert.Equal(t, seq, par, "worker count must not change the result")
}

// TestSelectLambda_Deterministic verifies bit-identical repeated sweeps.
func TestSelectLambda_Deterministic(t *testing.T) {
	y := noisySteps(4, 10, 0.5, 13)
	opts := cv.Options{Grid: []float64{0.05, 0.5, 5}, Folds: 4}

	first, err := cv.SelectLambda(y, &opts)
	require.NoError(t, err)
	second, err := cv.SelectLambda(y, &opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSelectLambda_GridNotAliased verifies the Result owns its grid copy.
func TestSelectLambda_GridNotAliased(t *testing.T) {
	y := noisySteps(4, 10, 0.2, 3)
	grid := []float64{0.1, 1, 10}
	opts := cv.Options{Grid: grid, Folds: 4}

	res, err := cv.SelectLambda(y, &opts)
	require.NoError(t, err)

	res.Grid[0] = -777
	assert.Equal(t, []float64{0.1, 1, 10}, grid, "caller's grid must stay untouched")
}

// TestSelectLambda_OneSEPrefersRegularization builds a case where several
// grid points tie near the optimum: the 1-SE pick must never be the less
// regularized of the admissible set.
func TestSelectLambda_OneSEPrefersRegularization(t *testing.T) {
	y := noisySteps(3, 30, 0.25, 21)
	opts := cv.Options{Grid: []float64{0.01, 0.03, 0.1, 0.3, 1, 3, 10, 30}, Folds: 6}

	res, err := cv.SelectLambda(y, &opts)
	require.NoError(t, err)

	// Everything with mean loss inside the 1-SE band is ≤ the pick.
	minIdx := 0
	for gi := range res.MeanLosses {
		if res.MeanLosses[gi] < res.MeanLosses[minIdx] {
			minIdx = gi
		}
	}
	band := res.MeanLosses[minIdx] + res.StdErrs[minIdx]
	for gi := range res.Grid {
		if res.MeanLosses[gi] <= band {
			assert.LessOrEqual(t, res.Grid[gi], res.LambdaOneSE,
				"grid point %g is admissible but exceeds the 1-SE pick", res.Grid[gi])
		}
	}
}

// TestSelectLambda_ErrorMentionsPackage double-checks wrapped messages keep
// the cv prefix convention.
func TestSelectLambda_ErrorMentionsPackage(t *testing.T) {
	_, err := cv.SelectLambda(make([]float64, 4), &cv.Options{Grid: []float64{1}, Folds: 9})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "cv:"), "got %q", err.Error())
}
