package timeseries

import "finmath/internal/vecops"

// SmoothedRSI computes the Relative Strength Index over consecutive price
// changes using Wilder's smoothing.
//
// The initial average gain and loss are the conditional sums of the first
// window changes divided by the window; every later change updates them with
// weight (window-1)/window on the old average. Each update emits
// 100 - 100/(1+gain/loss), or 100 exactly when the average loss is zero.
//
// Fewer than window+1 prices cannot fill the first window of changes and
// yield an empty result, not an error. Result length is len(prices)-window.
func SmoothedRSI(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, ErrZeroWindow
	}
	if len(prices) <= window {
		return []float64{}, nil
	}

	changes := make([]float64, len(prices)-1)
	vecops.Sub(changes, prices[1:], prices[:len(prices)-1])

	w := float64(window)
	avgGain := vecops.ConditionalSum(changes[:window], true) / w
	avgLoss := vecops.ConditionalSum(changes[:window], false) / w

	out := make([]float64, 0, len(changes)-window+1)
	out = append(out, rsiValue(avgGain, avgLoss))

	for i := window; i < len(changes); i++ {
		change := changes[i]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else if change < 0 {
			loss = -change
		}
		avgGain = (avgGain*(w-1) + gain) / w
		avgLoss = (avgLoss*(w-1) + loss) / w
		out = append(out, rsiValue(avgGain, avgLoss))
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
