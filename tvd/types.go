package tvd

import "errors"

// Sentinel errors returned by Denoise and the helpers in this package.
// All inputs are validated before any work begins; on error no partial
// output is produced.
var (
	// ErrNegativeLambda indicates the penalty λ is negative.
	ErrNegativeLambda = errors.New("tvd: lambda must be non-negative")
	// ErrNonFiniteValue indicates a NaN or ±Inf among the inputs (signal or λ).
	ErrNonFiniteValue = errors.New("tvd: inputs must be finite")
	// ErrSignalTooLong indicates the signal exceeds MaxSignalLen positions.
	ErrSignalTooLong = errors.New("tvd: signal length exceeds MaxSignalLen")
	// ErrUnsupportedAlgorithm indicates an Algorithm value this package does not implement.
	ErrUnsupportedAlgorithm = errors.New("tvd: unsupported algorithm")
	// ErrLengthMismatch indicates two sequences that must share a length do not.
	ErrLengthMismatch = errors.New("tvd: sequences must have equal length")
)

// MaxSignalLen is the maximum supported signal length.
//
// The ceiling is an explicit, documented constant rather than an incidental
// property of the index type: Go's int is 64-bit on all supported targets,
// so the historical 32-bit counter limit of direct TVD implementations does
// not apply here, but an explicit bound keeps the failure mode a sentinel
// error instead of an address-space exhaustion.
const MaxSignalLen = 1<<31 - 1

// Algorithm selects the solver variant. Reserved for future methods; the
// only defined value is DirectSquaredError.
type Algorithm int

const (
	// DirectSquaredError is the exact single-pass primal/dual algorithm for
	// the squared-error data term. O(n) time, O(1) auxiliary state.
	DirectSquaredError Algorithm = iota
)

// Options configures Denoise.
//
// Fields:
//   - Algo - solver variant; only DirectSquaredError is defined.
//
// The zero value equals DefaultOptions(). A nil *Options passed to Denoise
// is treated as DefaultOptions().
type Options struct {
	Algo Algorithm
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Algo: DirectSquaredError}
}

// Segment is a maximal run of consecutive positions sharing one constant
// value in a piecewise-constant sequence. The run covers the half-open
// index range [Start, End).
type Segment struct {
	Start int
	End   int
	Value float64
}
