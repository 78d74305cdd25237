package options

import "math"

// BlackScholes prices a European option. Arguments outside the model's
// domain (non-positive spot, strike or time, negative volatility) yield NaN
// rather than an error, matching the closed-form convention of the greeks.
func BlackScholes(kind Kind, strike, spot, t, rate, sigma float64) float64 {
	if strike <= 0 || spot <= 0 || t <= 0 || sigma < 0 {
		return math.NaN()
	}
	sqt := sigma * math.Sqrt(t)
	d1 := (math.Log(spot/strike) + (rate+sigma*sigma/2)*t) / sqt
	d2 := d1 - sqt

	if kind == Call {
		return spot*normalCDF(d1) - strike*math.Exp(-rate*t)*normalCDF(d2)
	}
	return strike*math.Exp(-rate*t)*normalCDF(-d2) - spot*normalCDF(-d1)
}

// The greeks below follow the dividend-adjusted Black-Scholes formulas with
// continuous yield q. Vega and rho are scaled per 1% move, theta per unit of
// the total maturity T, matching common desk conventions.

func d1d2(spot, strike, t, rate, q, sigma float64) (float64, float64) {
	sqt := sigma * math.Sqrt(t)
	d1 := (math.Log(spot/strike) + (rate-q+0.5*sigma*sigma)*t) / sqt
	return d1, d1 - sqt
}

func validGreekInput(spot, strike, t, sigma float64) bool {
	return spot > 0 && strike > 0 && t > 0 && sigma >= 0
}

// Delta returns the sensitivity of the option price to the spot.
func Delta(kind Kind, spot, strike, t, rate, q, sigma float64) float64 {
	if !validGreekInput(spot, strike, t, sigma) {
		return math.NaN()
	}
	d1, _ := d1d2(spot, strike, t, rate, q, sigma)
	if kind == Call {
		return math.Exp(-q*t) * normalCDF(d1)
	}
	return math.Exp(-q*t) * (normalCDF(d1) - 1)
}

// Gamma returns the second derivative of price with respect to spot.
func Gamma(spot, strike, t, rate, q, sigma float64) float64 {
	if !validGreekInput(spot, strike, t, sigma) {
		return math.NaN()
	}
	d1, _ := d1d2(spot, strike, t, rate, q, sigma)
	return math.Exp(-q*t) * normalPDF(d1) / (spot * sigma * math.Sqrt(t))
}

// Vega returns the price change per 1% volatility move.
func Vega(spot, strike, t, rate, q, sigma float64) float64 {
	if !validGreekInput(spot, strike, t, sigma) {
		return math.NaN()
	}
	d1, _ := d1d2(spot, strike, t, rate, q, sigma)
	return 0.01 * spot * math.Exp(-q*t) * math.Sqrt(t) * normalPDF(d1)
}

// Theta returns time decay per unit of total maturity T.
func Theta(kind Kind, spot, strike, t, T, rate, q, sigma float64) float64 {
	if !validGreekInput(spot, strike, t, sigma) || T <= 0 {
		return math.NaN()
	}
	d1, d2 := d1d2(spot, strike, t, rate, q, sigma)
	term1 := -(spot * sigma * math.Exp(-q*t) * normalPDF(d1)) / (2 * math.Sqrt(t))
	term2 := rate * strike * math.Exp(-rate*t)
	term3 := q * spot * math.Exp(-q*t)
	if kind == Call {
		return (term1 - term2*normalCDF(d2) + term3*normalCDF(d1)) / T
	}
	return (term1 + term2*normalCDF(-d2) - term3*normalCDF(-d1)) / T
}

// Rho returns the price change per 1% rate move.
func Rho(kind Kind, spot, strike, t, rate, q, sigma float64) float64 {
	if !validGreekInput(spot, strike, t, sigma) {
		return math.NaN()
	}
	_, d2 := d1d2(spot, strike, t, rate, q, sigma)
	if kind == Call {
		return 0.01 * strike * t * math.Exp(-rate*t) * normalCDF(d2)
	}
	return -0.01 * strike * t * math.Exp(-rate*t) * normalCDF(-d2)
}
