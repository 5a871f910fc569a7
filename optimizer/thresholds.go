package optimizer

import "math"

// Thresholds returns {(1+eps)^i : i in Z, lower <= (1+eps)^i <= upper},
// ordered ascending, as described in Badanidiyuru et al. (2014),
// "Streaming submodular maximization: Massive data summarization on the
// fly". Returns ErrBadParam if eps <= 0.
func Thresholds(lower, upper, eps float64) ([]float64, error) {
	if eps <= 0 {
		return nil, ErrBadParam
	}

	var ts []float64
	i := int(math.Ceil(math.Log(lower) / math.Log(1.0+eps)))
	for val := math.Pow(1.0+eps, float64(i)); val <= upper; i, val = i+1, math.Pow(1.0+eps, float64(i+1)) {
		ts = append(ts, val)
	}

	return ts, nil
}
