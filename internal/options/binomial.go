package options

import "math"

// Binomial prices a European option on a recombining CRR tree with steps
// time slices. Terminal payoffs are weighted by their binomial node
// probabilities, with the coefficient maintained incrementally to avoid
// factorial overflow. Invalid domain inputs yield NaN.
func Binomial(kind Kind, spot, strike, T, rate, sigma float64, steps int) float64 {
	if spot <= 0 || strike <= 0 || T <= 0 || sigma < 0 || steps <= 0 {
		return math.NaN()
	}

	dt := T / float64(steps)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := math.Exp(-sigma * math.Sqrt(dt))
	p := (math.Exp(rate*dt) - d) / (u - d)

	value := 0.0
	coeff := 1.0 // C(steps, 0)
	n := float64(steps)
	for i := 0; i <= steps; i++ {
		fi := float64(i)
		nodeProb := coeff * math.Pow(p, fi) * math.Pow(1-p, n-fi)
		terminal := spot * math.Pow(u, fi) * math.Pow(d, n-fi)

		var payoff float64
		if kind == Call {
			payoff = math.Max(terminal-strike, 0)
		} else {
			payoff = math.Max(strike-terminal, 0)
		}
		value += payoff * nodeProb

		if i < steps {
			coeff *= (n - fi) / (fi + 1)
		}
	}

	return value * math.Exp(-rate*T)
}

// Finite-difference greeks for the binomial tree. A non-positive bump
// defaults to 0.1% of the bumped parameter.

// BinomialDelta approximates delta by a forward difference in spot.
func BinomialDelta(kind Kind, spot, strike, T, rate, sigma float64, steps int, bump float64) float64 {
	if bump <= 0 {
		bump = 0.001 * spot
	}
	base := Binomial(kind, spot, strike, T, rate, sigma, steps)
	up := Binomial(kind, spot+bump, strike, T, rate, sigma, steps)
	return (up - base) / bump
}

// BinomialGamma approximates gamma by a central second difference in spot.
func BinomialGamma(kind Kind, spot, strike, T, rate, sigma float64, steps int, bump float64) float64 {
	if bump <= 0 {
		bump = 0.001 * spot
	}
	up := Binomial(kind, spot+bump, strike, T, rate, sigma, steps)
	base := Binomial(kind, spot, strike, T, rate, sigma, steps)
	down := Binomial(kind, spot-bump, strike, T, rate, sigma, steps)
	return (up - 2*base + down) / (bump * bump)
}

// BinomialVega approximates vega (per 1% vol move) by a forward difference.
func BinomialVega(kind Kind, spot, strike, T, rate, sigma float64, steps int, bump float64) float64 {
	if bump <= 0 {
		bump = 0.001 * sigma
	}
	up := Binomial(kind, spot, strike, T, rate, sigma+bump, steps)
	base := Binomial(kind, spot, strike, T, rate, sigma, steps)
	return 0.01 * (up - base) / bump
}

// BinomialTheta approximates theta by a forward difference in maturity.
func BinomialTheta(kind Kind, spot, strike, T, rate, sigma float64, steps int, bump float64) float64 {
	if bump <= 0 {
		bump = 0.001 * T
	}
	up := Binomial(kind, spot, strike, T+bump, rate, sigma, steps)
	base := Binomial(kind, spot, strike, T, rate, sigma, steps)
	return (up - base) / bump
}

// BinomialRho approximates rho (per 1% rate move) by a forward difference.
func BinomialRho(kind Kind, spot, strike, T, rate, sigma float64, steps int, bump float64) float64 {
	if bump <= 0 {
		bump = 0.001 * rate
	}
	up := Binomial(kind, spot, strike, T, rate+bump, sigma, steps)
	base := Binomial(kind, spot, strike, T, rate, sigma, steps)
	return 0.01 * (up - base) / bump
}
