package timeseries

import (
	"math"

	"finmath/internal/vecops"
)

// tradingDaysPerYear is the conventional annualization basis for daily data.
const tradingDaysPerYear = 252

// LogReturns converts a price sequence into log-returns ln(p[i]/p[i-1]).
// Every price must be strictly positive; a violation fails the whole call
// before any output is produced. At least 2 prices are required.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}
	for _, p := range prices {
		if p <= 0 {
			return nil, ErrNonPositivePrice
		}
	}

	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return out, nil
}

// RollingVolatility computes annualized rolling volatility: log-returns of
// the price sequence, the incremental rolling standard deviation over each
// return window, scaled by sqrt(252).
//
// Requires at least 2 prices and a window strictly smaller than the number
// of returns; each violation fails with its own distinct error. Result
// length is len(prices) - window.
func RollingVolatility(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}
	if window >= len(prices)-1 {
		return nil, ErrWindowTooLarge
	}

	returns, err := LogReturns(prices)
	if err != nil {
		return nil, err
	}
	vols, err := RollingStdDev(returns, window)
	if err != nil {
		return nil, err
	}
	vecops.MulScalar(vols, vols, math.Sqrt(tradingDaysPerYear))
	return vols, nil
}

// RollingVolatilityDirect is RollingVolatility with each window's standard
// deviation fully recomputed by the two-pass vecops reduction.
func RollingVolatilityDirect(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	if len(prices) < 2 {
		return nil, ErrInsufficientData
	}
	if window >= len(prices)-1 {
		return nil, ErrWindowTooLarge
	}

	returns, err := LogReturns(prices)
	if err != nil {
		return nil, err
	}
	annualize := math.Sqrt(tradingDaysPerYear)
	out := make([]float64, 0, len(returns)-window+1)
	for i := 0; i+window <= len(returns); i++ {
		out = append(out, vecops.StdDev(returns[i:i+window])*annualize)
	}
	return out, nil
}
