package cv

import (
	"errors"
	"runtime"
)

// Sentinel errors for selector-side precondition violations. Solver errors
// surfacing from a sweep are wrapped with (λ, fold) context and remain
// matchable with errors.Is against the tvd sentinels.
var (
	// ErrEmptyGrid indicates an explicitly empty (non-nil) λ grid.
	ErrEmptyGrid = errors.New("cv: lambda grid must be non-empty")
	// ErrBadGridValue indicates a negative or non-finite λ in the grid.
	ErrBadGridValue = errors.New("cv: lambda grid values must be finite and non-negative")
	// ErrBadFoldCount indicates a fold count outside 2 ≤ folds ≤ len(y)/2.
	ErrBadFoldCount = errors.New("cv: folds must satisfy 2 <= folds <= len(y)/2")
	// ErrUnsupportedLoss indicates a LossKind this package does not implement.
	ErrUnsupportedLoss = errors.New("cv: unsupported loss function")
)

// LossKind selects the out-of-fold scoring function. Reserved for future
// losses; the only defined value matches the solver's native squared-error
// objective.
type LossKind int

const (
	// SquaredError scores a fold by the sum of squared differences between
	// interpolated predictions and held-out values.
	SquaredError LossKind = iota
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultFolds is the number of round-robin cross-validation folds.
	DefaultFolds = 10

	// DefaultGridMin and DefaultGridMax bound the default λ grid, and
	// DefaultGridSize points are spaced logarithmically between them:
	// 10⁻²..10³ in steps of 0.1 decades.
	DefaultGridMin  = 1e-2
	DefaultGridMax  = 1e3
	DefaultGridSize = 51
)

// Options configures SelectLambda.
//
// Fields:
//   - Grid    - candidate penalties. nil ⇒ DefaultGrid(); an explicitly
//     empty slice is rejected with ErrEmptyGrid.
//   - Folds   - number of round-robin folds (0 ⇒ DefaultFolds).
//   - Loss    - out-of-fold scoring function; only SquaredError is defined.
//   - Workers - bound on concurrent (λ, fold) evaluations (≤0 ⇒ GOMAXPROCS).
//     Workers=1 reproduces the sequential reference behavior; results are
//     identical for any worker count because every cell is written
//     independently and reduced in a fixed order.
type Options struct {
	Grid    []float64
	Folds   int
	Loss    LossKind
	Workers int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Grid:    DefaultGrid(),
		Folds:   DefaultFolds,
		Loss:    SquaredError,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Result reports a cross-validated λ sweep. Slices are index-aligned with
// Grid and owned by the caller (no aliasing with Options.Grid).
type Result struct {
	// Grid holds the scored penalties, in the order supplied.
	Grid []float64
	// MeanLosses[i] is the mean out-of-fold loss for Grid[i].
	MeanLosses []float64
	// StdErrs[i] is the standard error of MeanLosses[i]
	// (sample standard deviation across folds divided by √folds).
	StdErrs []float64
	// LambdaMin is the grid value with the smallest mean loss
	// (first occurrence on exact ties).
	LambdaMin float64
	// LambdaOneSE is the largest grid value whose mean loss stays within
	// one standard error of the minimum: the 1-SE rule pick.
	LambdaOneSE float64
}
