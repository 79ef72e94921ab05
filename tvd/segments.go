package tvd

import "math"

// Segments returns the maximal constant runs of x in index order.
//
// Runs are detected by exact float64 equality: the solver writes one
// resolved value to every position of a run, so equal-by-construction is
// the correct boundary test and no epsilon is involved.
//
// An empty input yields an empty (non-nil) slice.
//
// Complexity: O(n) time, O(s) space for s runs.
func Segments(x []float64) []Segment {
	segs := make([]Segment, 0, 1)
	if len(x) == 0 {
		return segs
	}

	var (
		start = 0    // first index of the open run
		i     int    // scan position
	)
	for i = 1; i < len(x); i++ {
		if x[i] != x[start] {
			segs = append(segs, Segment{Start: start, End: i, Value: x[start]})
			start = i
		}
	}
	segs = append(segs, Segment{Start: start, End: len(x), Value: x[start]})

	return segs
}

// SegmentCount returns the number of maximal constant runs in x.
// Equivalent to len(Segments(x)) without allocating.
//
// Complexity: O(n) time, O(1) space.
func SegmentCount(x []float64) int {
	if len(x) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(x); i++ {
		if x[i] != x[i-1] {
			count++
		}
	}

	return count
}

// Objective evaluates the solver's objective
//
//	Σᵢ (xᵢ − yᵢ)² + λ · Σᵢ |xᵢ₊₁ − xᵢ|
//
// for an arbitrary candidate x against the observed y.
//
// Contracts:
//   - len(x) == len(y) (ErrLengthMismatch otherwise).
//
// Complexity: O(n) time, O(1) space.
func Objective(x, y []float64, lambda float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	var (
		fit float64 // accumulated squared error
		tv  float64 // accumulated total variation
		i   int
	)
	for i = 0; i < len(x); i++ {
		d := x[i] - y[i]
		fit += d * d
	}
	for i = 1; i < len(x); i++ {
		tv += math.Abs(x[i] - x[i-1])
	}

	return fit + lambda*tv, nil
}
