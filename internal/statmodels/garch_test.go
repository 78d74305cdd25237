package statmodels

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"finmath/internal/vecops"
)

// simulateGARCH draws a return path from known parameters.
func simulateGARCH(omega, alpha, beta float64, n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	sigma2 := omega / (1 - alpha - beta)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sqrt(sigma2) * rng.NormFloat64()
		sigma2 = omega + alpha*out[i]*out[i] + beta*sigma2
	}
	return out
}

func TestFitGARCH_ImprovesLikelihood(t *testing.T) {
	returns := simulateGARCH(1e-6, 0.08, 0.9, 2000, 42)
	sample := vecops.Variance(returns)

	start := &GARCH{Alpha: 0.1, Beta: 0.8}
	start.Omega = sample * (1 - start.Alpha - start.Beta)

	fitted, err := FitGARCH(returns)
	if err != nil {
		t.Fatal(err)
	}
	if negLogLikelihood(fitted, returns, sample) > negLogLikelihood(start, returns, sample) {
		t.Error("fit did not improve on the starting likelihood")
	}
	if fitted.Omega <= 0 || fitted.Alpha < 0 || fitted.Beta < 0 {
		t.Errorf("fit left the feasible region: %+v", fitted)
	}
	if fitted.Alpha+fitted.Beta > maxPersistence+1e-12 {
		t.Errorf("persistence %v above bound", fitted.Alpha+fitted.Beta)
	}
}

func TestFitGARCH_TooFewObservations(t *testing.T) {
	if _, err := FitGARCH(make([]float64, 5)); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}
	// Constant series has zero variance.
	flat := make([]float64, 100)
	if _, err := FitGARCH(flat); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("flat series: got %v, want ErrInsufficientData", err)
	}
}

func TestConditionalVariances_Positive(t *testing.T) {
	returns := simulateGARCH(1e-6, 0.1, 0.85, 500, 7)
	g := &GARCH{Omega: 1e-6, Alpha: 0.1, Beta: 0.85}

	path := g.ConditionalVariances(returns)
	if len(path) != len(returns) {
		t.Fatalf("path length %d, want %d", len(path), len(returns))
	}
	for i, v := range path {
		if v <= 0 {
			t.Fatalf("variance %v at %d, want > 0", v, i)
		}
	}
}

func TestForecast_ConvergesToUnconditional(t *testing.T) {
	returns := simulateGARCH(1e-6, 0.1, 0.85, 500, 11)
	g := &GARCH{Omega: 1e-6, Alpha: 0.1, Beta: 0.85}

	horizon := 500
	fc := g.Forecast(returns, horizon)
	if len(fc) != horizon {
		t.Fatalf("forecast length %d, want %d", len(fc), horizon)
	}

	longRun := g.UnconditionalVariance()
	gapFirst := math.Abs(fc[0] - longRun)
	gapLast := math.Abs(fc[horizon-1] - longRun)
	if gapLast > gapFirst && gapFirst > 1e-15 {
		t.Errorf("forecast diverges from long-run variance: first gap %v, last gap %v", gapFirst, gapLast)
	}
	if rel := gapLast / longRun; rel > 1e-6 {
		t.Errorf("horizon-%d forecast off long-run variance by %v", horizon, rel)
	}
}

func TestUnconditionalVariance_NonStationary(t *testing.T) {
	g := &GARCH{Omega: 1e-6, Alpha: 0.5, Beta: 0.5}
	if v := g.UnconditionalVariance(); !math.IsInf(v, 1) {
		t.Errorf("got %v, want +Inf", v)
	}
}

func TestForecast_EmptyInputs(t *testing.T) {
	g := &GARCH{Omega: 1e-6, Alpha: 0.1, Beta: 0.85}
	if fc := g.Forecast(nil, 10); len(fc) != 0 {
		t.Errorf("no returns: got %d forecasts", len(fc))
	}
	if fc := g.Forecast([]float64{0.01, -0.02}, 0); len(fc) != 0 {
		t.Errorf("zero horizon: got %d forecasts", len(fc))
	}
}
