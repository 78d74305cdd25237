// Package timeseries computes per-window statistics (rolling standard
// deviation, moving averages, RSI, EMA) over in-memory float64 sequences.
//
// Every function allocates a fresh result slice and never mutates its input.
// Each windowed statistic has an incremental O(1)-per-step engine and, where
// useful, a direct variant that recomputes each window with the vecops
// primitives; the two must agree within floating-point rounding.
package timeseries

import (
	"math"

	"finmath/internal/vecops"
)

// RollingStdDev returns the population standard deviation of every
// window-sized sub-range of data, one value per window position.
//
// The first window is primed with a single-pass Welford update; each slide
// then folds the leaving element out and the entering element in:
//
//	newMean = mean + (in - out) / w
//	sqSum  += (in - out) * (in + out - newMean - mean)
//
// which is the numerically stable form of the update.
// The naive subtract-then-add of squared terms loses precision and must not
// be reintroduced; TestRollingStdDev_MatchesDirect guards against drift.
//
// A window larger than the sequence shrinks to the sequence length, so all
// available data is treated as one window. A zero window is an error.
func RollingStdDev(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	n := len(data)
	if n == 0 {
		return []float64{}, nil
	}
	if window > n {
		window = n
	}

	out := make([]float64, 0, n-window+1)

	var mean, sqSum float64
	for i := 0; i < window; i++ {
		oldMean := mean
		mean += (data[i] - oldMean) / float64(i+1)
		sqSum += (data[i] - oldMean) * (data[i] - mean)
	}
	w := float64(window)
	out = append(out, math.Sqrt(clampNonNeg(sqSum)/w))

	for i := window; i < n; i++ {
		in, leaving := data[i], data[i-window]
		oldMean := mean
		mean += (in - leaving) / w
		sqSum += (in - leaving) * (in + leaving - mean - oldMean)
		// Rounding can push sqSum marginally below zero.
		sqSum = clampNonNeg(sqSum)
		out = append(out, math.Sqrt(sqSum/w))
	}

	return out, nil
}

// RollingStdDevDirect computes the same result as RollingStdDev by fully
// recomputing each window with the two-pass vecops reduction. O(n*window);
// kept as the correctness oracle and for callers that prefer the simpler
// error profile of independent windows.
func RollingStdDevDirect(data []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	n := len(data)
	if n == 0 {
		return []float64{}, nil
	}
	if window > n {
		window = n
	}

	out := make([]float64, 0, n-window+1)
	for i := 0; i+window <= n; i++ {
		out = append(out, vecops.StdDev(data[i:i+window]))
	}
	return out, nil
}

func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
