package timeseries

// EMA returns the exponential moving average of prices using the standard
// window-derived smoothing factor alpha = 2/(window+1).
func EMA(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	return EMAWithSmoothing(prices, 2.0/(float64(window)+1.0))
}

// EMAWithSmoothing computes the first-order recurrence
//
//	ema[0] = prices[0]
//	ema[i] = alpha*prices[i] + (1-alpha)*ema[i-1]
//
// alpha must lie in the open interval (0,1). Empty input yields empty output.
//
// Each output depends on the previous one, so the recurrence cannot be
// vectorized across the sequence; the only optimizations available are
// per-step arithmetic and running independent series in parallel.
func EMAWithSmoothing(prices []float64, alpha float64) ([]float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, ErrInvalidSmoothing
	}
	if len(prices) == 0 {
		return []float64{}, nil
	}

	out := make([]float64, len(prices))
	out[0] = prices[0]
	oneMinus := 1.0 - alpha
	for i := 1; i < len(prices); i++ {
		out[i] = prices[i]*alpha + out[i-1]*oneMinus
	}
	return out, nil
}
