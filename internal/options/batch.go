package options

import (
	"runtime"
	"sync"
)

// Contract describes one option in a pricing batch.
type Contract struct {
	Kind   Kind
	Strike float64
	Spot   float64
	Time   float64
	Rate   float64
	Sigma  float64
}

// PriceBatch prices every contract with Black-Scholes, splitting the batch
// into contiguous chunks priced by independent goroutines. Each worker
// writes only its own disjoint range of the result slice, so no
// synchronization beyond the final join is needed. workers <= 0 uses one
// worker per CPU.
func PriceBatch(contracts []Contract, workers int) []float64 {
	out := make([]float64, len(contracts))
	if len(contracts) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(contracts) {
		workers = len(contracts)
	}

	chunk := (len(contracts) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(contracts); start += chunk {
		end := start + chunk
		if end > len(contracts) {
			end = len(contracts)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				c := contracts[i]
				out[i] = BlackScholes(c.Kind, c.Strike, c.Spot, c.Time, c.Rate, c.Sigma)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}
