package cv

import "gonum.org/v1/gonum/floats"

// DefaultGrid returns the default penalty grid: DefaultGridSize points
// spaced logarithmically from DefaultGridMin to DefaultGridMax inclusive.
// A fresh slice is returned on every call.
//
// Complexity: O(DefaultGridSize).
func DefaultGrid() []float64 {
	return floats.LogSpan(make([]float64, DefaultGridSize), DefaultGridMin, DefaultGridMax)
}
