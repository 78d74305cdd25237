package timeseries

import "finmath/internal/vecops"

// SimpleMovingAverage returns the mean of every window-sized sub-range of
// data. The sum of the first window is primed with the vecops reduction and
// then slid in O(1) per step: sum += data[i] - data[i-window].
//
// Input shorter than the window yields an empty result, not an error. This
// lenient contract intentionally differs from RollingStdDev's shrink-window
// behavior; see DESIGN.md before unifying the two.
func SimpleMovingAverage(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	n := len(data)
	if n < window {
		return []float64{}, nil
	}

	out := make([]float64, 0, n-window+1)
	w := float64(window)

	sum := vecops.Sum(data[:window])
	out = append(out, sum/w)
	for i := window; i < n; i++ {
		sum += data[i] - data[i-window]
		out = append(out, sum/w)
	}
	return out, nil
}

// SimpleMovingAverageDirect recomputes every window sum with the vecops
// reduction instead of sliding it. Same contract as SimpleMovingAverage.
func SimpleMovingAverageDirect(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	n := len(data)
	if n < window {
		return []float64{}, nil
	}

	out := make([]float64, 0, n-window+1)
	w := float64(window)
	for i := 0; i+window <= n; i++ {
		out = append(out, vecops.Sum(data[i:i+window])/w)
	}
	return out, nil
}
