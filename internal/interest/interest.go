// Package interest implements compounding, discounting, annuity and cash
// flow arithmetic.
package interest

import (
	"errors"
	"math"
)

// ErrNegativeRate is returned by the discount factor functions for a
// negative rate or time.
var ErrNegativeRate = errors.New("rate and time must be non-negative")

// ErrNoConvergence is returned when the IRR solver exhausts its iteration
// budget without meeting tolerance.
var ErrNoConvergence = errors.New("irr solver failed to converge")

// CompoundInterest grows principal at an annual percentage rate compounded
// frequency times per year over time years. Negative time yields 0 and a
// non-positive frequency leaves the principal untouched.
func CompoundInterest(principal, rate, time float64, frequency int) float64 {
	if time < 0 {
		return 0
	}
	if frequency <= 0 {
		return principal
	}
	f := float64(frequency)
	return principal * math.Pow(1+rate/(100*f), time*f)
}

// DiscountFactor returns (1+rate)^-time for annual compounding.
func DiscountFactor(rate, time float64) (float64, error) {
	if rate < 0 || time < 0 {
		return 0, ErrNegativeRate
	}
	return math.Pow(1+rate, -time), nil
}

// ContinuousDiscountFactor returns e^(-rate*time).
func ContinuousDiscountFactor(rate, time float64) (float64, error) {
	if rate < 0 || time < 0 {
		return 0, ErrNegativeRate
	}
	return math.Exp(-rate * time), nil
}

// FutureValueFactor returns (1+rate)^time for annual compounding.
func FutureValueFactor(rate, time float64) (float64, error) {
	if rate < 0 || time < 0 {
		return 0, ErrNegativeRate
	}
	return math.Pow(1+rate, time), nil
}

// PresentValue discounts a future cash flow at an annually compounded rate.
func PresentValue(futureValue, rate, time float64) float64 {
	return futureValue * math.Pow(1+rate, -time)
}

// FutureValue compounds a present cash flow at an annually compounded rate.
func FutureValue(presentValue, rate, time float64) float64 {
	return presentValue * math.Pow(1+rate, time)
}

// PresentValueContinuous discounts under continuous compounding.
func PresentValueContinuous(futureValue, rate, time float64) float64 {
	return futureValue * math.Exp(-rate*time)
}

// FutureValueContinuous compounds under continuous compounding.
func FutureValueContinuous(presentValue, rate, time float64) float64 {
	return presentValue * math.Exp(rate*time)
}

// AnnuityPresentValue returns the value today of payment received at the
// end of each of periods equal intervals, discounted per interval at rate.
// A zero rate degenerates to payment*periods.
func AnnuityPresentValue(payment, rate float64, periods int) float64 {
	n := float64(periods)
	if rate == 0 {
		return payment * n
	}
	return payment * (1 - math.Pow(1+rate, -n)) / rate
}

// AnnuityFutureValue returns the accumulated value at the final payment
// date of an ordinary annuity.
func AnnuityFutureValue(payment, rate float64, periods int) float64 {
	n := float64(periods)
	if rate == 0 {
		return payment * n
	}
	return payment * (math.Pow(1+rate, n) - 1) / rate
}

// AnnuityDuePresentValue values an annuity paid at the start of each
// interval.
func AnnuityDuePresentValue(payment, rate float64, periods int) float64 {
	return AnnuityPresentValue(payment, rate, periods) * (1 + rate)
}

// AnnuityDueFutureValue accumulates an annuity paid at the start of each
// interval.
func AnnuityDueFutureValue(payment, rate float64, periods int) float64 {
	return AnnuityFutureValue(payment, rate, periods) * (1 + rate)
}

// NetPresentValue discounts the cash flow stream at rate. cashFlows[0] is
// the flow at time zero and is not discounted.
func NetPresentValue(rate float64, cashFlows []float64) float64 {
	npv := 0.0
	d := 1.0
	for i, cf := range cashFlows {
		if i > 0 {
			d *= 1 + rate
		}
		npv += cf / d
	}
	return npv
}

// InternalRateOfReturn solves NetPresentValue(r, cashFlows) = 0 with
// Newton-Raphson on the analytic NPV derivative, starting from guess.
func InternalRateOfReturn(cashFlows []float64, guess float64) (float64, error) {
	const (
		maxIterations = 100
		tolerance     = 1e-9
	)

	r := guess
	for i := 0; i < maxIterations; i++ {
		npv := 0.0
		dnpv := 0.0
		for k, cf := range cashFlows {
			fk := float64(k)
			d := math.Pow(1+r, fk)
			npv += cf / d
			if k > 0 {
				dnpv -= fk * cf / (d * (1 + r))
			}
		}
		if math.Abs(npv) <= tolerance {
			return r, nil
		}
		if dnpv == 0 || math.IsNaN(dnpv) {
			return 0, ErrNoConvergence
		}
		r -= npv / dnpv
		if r <= -1 {
			// Rates at or below -100% blow up the discount factors.
			r = -1 + tolerance
		}
	}
	return 0, ErrNoConvergence
}

// PaybackPeriod returns the time in periods for cumulative undiscounted
// flows to recover the initial outlay cashFlows[0], interpolating within
// the recovering period. Returns -1 when the flows never recover it.
func PaybackPeriod(cashFlows []float64) float64 {
	if len(cashFlows) == 0 {
		return -1
	}
	cumulative := cashFlows[0]
	if cumulative >= 0 {
		return 0
	}
	for i := 1; i < len(cashFlows); i++ {
		prev := cumulative
		cumulative += cashFlows[i]
		if cumulative >= 0 {
			return float64(i-1) + -prev/cashFlows[i]
		}
	}
	return -1
}
