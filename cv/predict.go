package cv

import "gonum.org/v1/gonum/interp"

// predictAtPositions evaluates a piecewise-linear interpolant fitted over
// (trainPos, trainVal) at every test position. Outside the training range
// the interpolant clamps to the nearest-edge training value (the behavior
// of gonum's interp.PiecewiseLinear), which is exactly the extrapolation
// rule the selector contract requires.
//
// Contracts:
//   - trainPos is strictly increasing (guaranteed by makeFolds).
//   - len(trainPos) == len(trainVal) ≥ 1; a single training point yields a
//     constant prediction.
//
// Complexity: O(len(train) + len(test)·log(len(train))).
func predictAtPositions(trainPos, trainVal, testPos []float64) ([]float64, error) {
	pred := make([]float64, len(testPos))

	// Degenerate single-point fit: nothing to interpolate between.
	if len(trainPos) == 1 {
		for i := range pred {
			pred[i] = trainVal[0]
		}

		return pred, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(trainPos, trainVal); err != nil {
		return nil, err
	}
	for i, p := range testPos {
		pred[i] = pl.Predict(p)
	}

	return pred, nil
}
