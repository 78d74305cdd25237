package fixedincome

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

func TestPrice_KnownValues(t *testing.T) {
	cases := []struct {
		periods int
		want    float64
	}{
		{1, 8623.5169},
		{2, 8616.2218},
		{12, 8610.0699},
	}
	for _, c := range cases {
		got := Price(10000, 0.05, 0.06, c.periods, 30)
		assertClose(t, "price", got, c.want, 0.001)
	}
}

func TestPrice_ParAndDiscount(t *testing.T) {
	// Coupon equal to yield prices at par.
	assertClose(t, "par bond", Price(1000, 0.06, 0.06, 2, 10), 1000, 1e-6)

	// Higher yield prices below par, lower above.
	if p := Price(1000, 0.05, 0.07, 2, 10); p >= 1000 {
		t.Errorf("discount bond priced %v, want < 1000", p)
	}
	if p := Price(1000, 0.07, 0.05, 2, 10); p <= 1000 {
		t.Errorf("premium bond priced %v, want > 1000", p)
	}
}

func TestYield_RoundTrip(t *testing.T) {
	cases := []struct {
		face, coupon, yield float64
		periods             int
		maturity            float64
	}{
		{10000, 0.05, 0.06, 1, 30},
		{1000, 0.08, 0.04, 2, 10},
		{5000, 0.03, 0.09, 4, 5},
		{1000, 0.06, 0.06, 2, 15},
	}
	for _, c := range cases {
		price := Price(c.face, c.coupon, c.yield, c.periods, c.maturity)
		got, err := Yield(c.face, c.coupon, price, c.periods, c.maturity)
		if err != nil {
			t.Fatalf("Yield(%+v): %v", c, err)
		}
		assertClose(t, "round trip yield", got, c.yield, 1e-6)
	}
}

func TestYield_NoConvergence(t *testing.T) {
	// No positive yield reproduces a price far above all cash flows.
	if _, err := Yield(1000, 0.05, 1e9, 2, 10); err == nil {
		t.Fatal("expected convergence failure for unreachable price")
	}
}

func TestDuration(t *testing.T) {
	// Zero-coupon duration equals maturity in periods.
	got := Duration(1000, 0, 0.05, 1, 10)
	assertClose(t, "zero coupon duration", got, 10, 1e-9)

	// Coupon bonds have shorter duration than maturity.
	d := Duration(1000, 0.06, 0.06, 1, 10)
	if d >= 10 || d <= 0 {
		t.Errorf("coupon bond duration %v outside (0, 10)", d)
	}

	// Higher coupons shorten duration.
	dLow := Duration(1000, 0.02, 0.06, 1, 10)
	dHigh := Duration(1000, 0.10, 0.06, 1, 10)
	if dHigh >= dLow {
		t.Errorf("duration %v with 10%% coupon not below %v with 2%%", dHigh, dLow)
	}
}
