package options

import (
	"math"
	"testing"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%g)", label, got, want, tol)
	}
}

func TestBlackScholes_KnownValues(t *testing.T) {
	cases := []struct {
		kind                          Kind
		strike, spot, t, rate, sigma  float64
		want                          float64
	}{
		{Call, 100, 105, 1, 0.05, 0.2, 13.8579},
		{Put, 100, 95, 1, 0.05, 0.2, 7.6338},
		{Call, 100, 100, 1, 0.05, 0.2, 10.4506},
		{Put, 100, 100, 1, 0.05, 0.2, 5.5735},
		{Call, 100, 100, 10, 0.05, 0.2, 45.1930},
		{Call, 100, 100, 1, 0.05, 1.0, 39.8402},
		{Call, 100, 100, 1, 0.05, 0.01, 4.8771},
		{Call, 100, 100, 1, 0.01, 0.2, 8.4333},
		{Call, 50, 100, 1, 0.05, 0.2, 52.4389},  // deep ITM
		{Call, 150, 100, 1, 0.05, 0.2, 0.3596},  // deep OTM
	}
	for _, c := range cases {
		got := BlackScholes(c.kind, c.strike, c.spot, c.t, c.rate, c.sigma)
		assertClose(t, c.kind.String(), got, c.want, 0.001)
	}
}

func TestBlackScholes_InvalidDomainIsNaN(t *testing.T) {
	cases := [][5]float64{
		{0, 100, 1, 0.05, 0.2},   // zero strike
		{100, -1, 1, 0.05, 0.2},  // negative spot
		{100, 100, 0, 0.05, 0.2}, // zero time
		{100, 100, 1, 0.05, -1},  // negative vol
	}
	for _, c := range cases {
		if got := BlackScholes(Call, c[0], c[1], c[2], c[3], c[4]); !math.IsNaN(got) {
			t.Errorf("args %v: got %v, want NaN", c, got)
		}
	}
}

func TestBlackScholes_PutCallParity(t *testing.T) {
	spot, strike, tm, rate, sigma := 100.0, 95.0, 0.75, 0.03, 0.25
	call := BlackScholes(Call, strike, spot, tm, rate, sigma)
	put := BlackScholes(Put, strike, spot, tm, rate, sigma)
	// C - P = S - K e^{-rt}
	assertClose(t, "parity", call-put, spot-strike*math.Exp(-rate*tm), 1e-9)
}

func TestDelta_Bounds(t *testing.T) {
	callDelta := Delta(Call, 100, 100, 1, 0.05, 0, 0.2)
	if callDelta <= 0 || callDelta >= 1 {
		t.Errorf("ATM call delta %v outside (0,1)", callDelta)
	}
	putDelta := Delta(Put, 100, 100, 1, 0.05, 0, 0.2)
	if putDelta >= 0 || putDelta <= -1 {
		t.Errorf("ATM put delta %v outside (-1,0)", putDelta)
	}
	assertClose(t, "parity deltas", callDelta-putDelta, 1, 1e-9)
}

func TestGreeks_Signs(t *testing.T) {
	if g := Gamma(100, 100, 1, 0.05, 0, 0.2); g <= 0 {
		t.Errorf("gamma %v, want > 0", g)
	}
	if v := Vega(100, 100, 1, 0.05, 0, 0.2); v <= 0 {
		t.Errorf("vega %v, want > 0", v)
	}
	if r := Rho(Call, 100, 100, 1, 0.05, 0, 0.2); r <= 0 {
		t.Errorf("call rho %v, want > 0", r)
	}
	if r := Rho(Put, 100, 100, 1, 0.05, 0, 0.2); r >= 0 {
		t.Errorf("put rho %v, want < 0", r)
	}
}

func TestBinomial_ConvergesToBlackScholes(t *testing.T) {
	spot, strike, tm, rate, sigma := 100.0, 100.0, 1.0, 0.05, 0.2
	bs := BlackScholes(Call, strike, spot, tm, rate, sigma)
	tree := Binomial(Call, spot, strike, tm, rate, sigma, 500)
	assertClose(t, "binomial vs BS call", tree, bs, 0.05)

	bsPut := BlackScholes(Put, strike, spot, tm, rate, sigma)
	treePut := Binomial(Put, spot, strike, tm, rate, sigma, 500)
	assertClose(t, "binomial vs BS put", treePut, bsPut, 0.05)
}

func TestBinomial_Monotonicity(t *testing.T) {
	// Deep ITM call exceeds intrinsic discounted payoff.
	price := Binomial(Call, 100, 80, 1, 0.05, 0.2, 100)
	if price <= 100-80*math.Exp(-0.05) {
		t.Errorf("deep ITM call %v below discounted intrinsic", price)
	}
	// Steps refinement stays close.
	p50 := Binomial(Call, 100, 100, 1, 0.05, 0.2, 50)
	p200 := Binomial(Call, 100, 100, 1, 0.05, 0.2, 200)
	assertClose(t, "steps refinement", p50, p200, 0.1)
}

func TestBinomial_InvalidDomainIsNaN(t *testing.T) {
	if got := Binomial(Call, 100, 100, 1, 0.05, 0.2, 0); !math.IsNaN(got) {
		t.Errorf("zero steps: got %v, want NaN", got)
	}
	if got := Binomial(Call, -5, 100, 1, 0.05, 0.2, 10); !math.IsNaN(got) {
		t.Errorf("negative spot: got %v, want NaN", got)
	}
}

func TestBinomialGreeks_MatchAnalytic(t *testing.T) {
	spot, strike, tm, rate, sigma := 100.0, 100.0, 1.0, 0.05, 0.2
	steps := 400

	delta := BinomialDelta(Call, spot, strike, tm, rate, sigma, steps, -1)
	assertClose(t, "fd delta", delta, Delta(Call, spot, strike, tm, rate, 0, sigma), 0.02)

	vega := BinomialVega(Call, spot, strike, tm, rate, sigma, steps, -1)
	assertClose(t, "fd vega", vega, Vega(spot, strike, tm, rate, 0, sigma), 0.02)
}

func TestPriceBatch_MatchesSequential(t *testing.T) {
	contracts := make([]Contract, 97)
	for i := range contracts {
		kind := Call
		if i%2 == 1 {
			kind = Put
		}
		contracts[i] = Contract{
			Kind:   kind,
			Strike: 90 + float64(i%20),
			Spot:   100,
			Time:   0.25 + float64(i%4)*0.25,
			Rate:   0.05,
			Sigma:  0.15 + float64(i%5)*0.05,
		}
	}

	for _, workers := range []int{0, 1, 4, 200} {
		got := PriceBatch(contracts, workers)
		if len(got) != len(contracts) {
			t.Fatalf("workers=%d: length %d, want %d", workers, len(got), len(contracts))
		}
		for i, c := range contracts {
			want := BlackScholes(c.Kind, c.Strike, c.Spot, c.Time, c.Rate, c.Sigma)
			if got[i] != want {
				t.Fatalf("workers=%d contract %d: got %v, want %v", workers, i, got[i], want)
			}
		}
	}
}

func TestPriceBatch_Empty(t *testing.T) {
	if got := PriceBatch(nil, 4); len(got) != 0 {
		t.Errorf("empty batch: got %d results", len(got))
	}
}
