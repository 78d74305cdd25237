// Package statmodels implements volatility and factor models over return
// series.
package statmodels

import (
	"errors"
	"math"

	"finmath/internal/vecops"
)

// ErrInsufficientData is returned when a model is fit on too few
// observations.
var ErrInsufficientData = errors.New("not enough observations")

// GARCH holds the parameters of a GARCH(1,1) variance process
//
//	sigma2[t] = Omega + Alpha*r[t-1]^2 + Beta*sigma2[t-1]
type GARCH struct {
	Omega float64
	Alpha float64
	Beta  float64
}

// Stationarity bound kept strictly below 1 so the unconditional variance
// stays finite during fitting.
const maxPersistence = 0.99

const minGARCHObservations = 20

// FitGARCH estimates GARCH(1,1) parameters from a demeaned return series
// by projected gradient descent on the negative Gaussian log-likelihood.
// Iterates are projected back into omega > 0, alpha, beta >= 0,
// alpha + beta <= maxPersistence after every step.
func FitGARCH(returns []float64) (*GARCH, error) {
	if len(returns) < minGARCHObservations {
		return nil, ErrInsufficientData
	}

	sample := vecops.Variance(returns)
	if sample <= 0 {
		return nil, ErrInsufficientData
	}

	// Common textbook starting point: moderate ARCH, high persistence,
	// omega matching the sample variance.
	g := &GARCH{
		Alpha: 0.1,
		Beta:  0.8,
	}
	g.Omega = sample * (1 - g.Alpha - g.Beta)

	const (
		iterations = 500
		bump       = 1e-6
	)
	lr := 0.01

	best := *g
	bestNLL := negLogLikelihood(g, returns, sample)
	for i := 0; i < iterations; i++ {
		grad := [3]float64{
			(negLogLikelihood(&GARCH{g.Omega + bump, g.Alpha, g.Beta}, returns, sample) -
				negLogLikelihood(&GARCH{g.Omega - bump, g.Alpha, g.Beta}, returns, sample)) / (2 * bump),
			(negLogLikelihood(&GARCH{g.Omega, g.Alpha + bump, g.Beta}, returns, sample) -
				negLogLikelihood(&GARCH{g.Omega, g.Alpha - bump, g.Beta}, returns, sample)) / (2 * bump),
			(negLogLikelihood(&GARCH{g.Omega, g.Alpha, g.Beta + bump}, returns, sample) -
				negLogLikelihood(&GARCH{g.Omega, g.Alpha, g.Beta - bump}, returns, sample)) / (2 * bump),
		}

		// Normalize by series length and scale omega's step to its own
		// magnitude, which is orders of magnitude below alpha and beta.
		n := float64(len(returns))
		g.Omega -= lr * sample * clip(grad[0]*sample/n)
		g.Alpha -= lr * clip(grad[1]/n)
		g.Beta -= lr * clip(grad[2]/n)
		g.project(sample)

		nll := negLogLikelihood(g, returns, sample)
		if nll < bestNLL {
			bestNLL = nll
			best = *g
		} else {
			lr *= 0.5
			*g = best
			if lr < 1e-6 {
				break
			}
		}
	}

	*g = best
	return g, nil
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func (g *GARCH) project(sample float64) {
	if g.Omega < sample*1e-6 {
		g.Omega = sample * 1e-6
	}
	if g.Alpha < 0 {
		g.Alpha = 0
	}
	if g.Beta < 0 {
		g.Beta = 0
	}
	if s := g.Alpha + g.Beta; s > maxPersistence {
		scale := maxPersistence / s
		g.Alpha *= scale
		g.Beta *= scale
	}
}

func negLogLikelihood(g *GARCH, returns []float64, initVar float64) float64 {
	nll := 0.0
	sigma2 := initVar
	for _, r := range returns {
		nll += math.Log(sigma2) + r*r/sigma2
		sigma2 = g.Omega + g.Alpha*r*r + g.Beta*sigma2
	}
	return 0.5 * nll
}

// ConditionalVariances returns the in-sample variance path, seeded with
// the sample variance. Result has the same length as returns, with
// entry t holding the variance conditional on information through t-1.
func (g *GARCH) ConditionalVariances(returns []float64) []float64 {
	out := make([]float64, len(returns))
	if len(returns) == 0 {
		return out
	}
	sigma2 := vecops.Variance(returns)
	for i, r := range returns {
		out[i] = sigma2
		sigma2 = g.Omega + g.Alpha*r*r + g.Beta*sigma2
	}
	return out
}

// UnconditionalVariance returns the long-run variance omega/(1-alpha-beta),
// or +Inf for a non-stationary parameterization.
func (g *GARCH) UnconditionalVariance() float64 {
	p := g.Alpha + g.Beta
	if p >= 1 {
		return math.Inf(1)
	}
	return g.Omega / (1 - p)
}

// Forecast projects the variance process horizon steps past the end of
// returns. Multi-step forecasts decay geometrically toward the
// unconditional variance at rate alpha+beta.
func (g *GARCH) Forecast(returns []float64, horizon int) []float64 {
	out := make([]float64, 0, horizon)
	if horizon <= 0 || len(returns) == 0 {
		return out
	}

	path := g.ConditionalVariances(returns)
	last := returns[len(returns)-1]
	sigma2 := g.Omega + g.Alpha*last*last + g.Beta*path[len(path)-1]
	for h := 0; h < horizon; h++ {
		out = append(out, sigma2)
		sigma2 = g.Omega + (g.Alpha+g.Beta)*sigma2
	}
	return out
}
