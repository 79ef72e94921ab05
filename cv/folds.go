package cv

// foldSplit is one fold's view of the signal: held-in (train) and held-out
// (test) values together with their original index positions, which the
// interpolation step needs as abscissae.
type foldSplit struct {
	trainPos []float64 // original positions of held-in values, increasing
	trainVal []float64
	testPos  []float64 // original positions of held-out values, increasing
	testVal  []float64
}

// makeFolds partitions y into k round-robin folds: the 0-based index i is
// held out by fold i%k (the classic ((i−1) mod k) rule on 1-based indices).
// Deterministic - no shuffling, no randomness; relative order is preserved
// on both sides of every split.
//
// Preconditions (enforced by validateOptions): 2 ≤ k ≤ len(y)/2, which
// guarantees every training side has at least two points.
//
// Complexity: O(n·k) time and space (each fold copies its own view of the
// signal; views are reused across every λ in the sweep).
func makeFolds(y []float64, k int) []foldSplit {
	n := len(y)
	splits := make([]foldSplit, k)

	var (
		f    int // fold under construction
		i    int // signal index
		nOut int // held-out count for fold f
	)
	for f = 0; f < k; f++ {
		// ceil((n-f)/k) positions i with i%k == f.
		nOut = (n - f + k - 1) / k
		splits[f] = foldSplit{
			trainPos: make([]float64, 0, n-nOut),
			trainVal: make([]float64, 0, n-nOut),
			testPos:  make([]float64, 0, nOut),
			testVal:  make([]float64, 0, nOut),
		}
		for i = 0; i < n; i++ {
			if i%k == f {
				splits[f].testPos = append(splits[f].testPos, float64(i))
				splits[f].testVal = append(splits[f].testVal, y[i])
			} else {
				splits[f].trainPos = append(splits[f].trainPos, float64(i))
				splits[f].trainVal = append(splits[f].trainVal, y[i])
			}
		}
	}

	return splits
}
