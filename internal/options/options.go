// Package options prices European options: closed-form Black-Scholes with
// analytic greeks, a binomial tree with finite-difference greeks, and a
// chunk-parallel batch pricer for independent contracts.
package options

import "math"

// Kind selects between call and put payoffs.
type Kind int

const (
	Call Kind = iota
	Put
)

func (k Kind) String() string {
	if k == Call {
		return "call"
	}
	return "put"
}

// Standard normal CDF via the complementary error function.
func normalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

var invSqrt2Pi = 1.0 / math.Sqrt(2.0*math.Pi)

// Standard normal PDF.
func normalPDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*x*x)
}
