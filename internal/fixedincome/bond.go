// Package fixedincome prices coupon bonds and derives yield and duration.
package fixedincome

import (
	"errors"
	"math"
)

// ErrNoConvergence is returned when the yield solver exhausts its iteration
// budget without meeting tolerance.
var ErrNoConvergence = errors.New("yield solver failed to converge")

// Price returns the value of a coupon bond.
//
// faceValue is repaid at maturity, couponRate is the annual coupon as a
// fraction of face, periods is the number of coupon payments per year, and
// maturity is in years. Uses the closed-form annuity expression
//
//	P = c*m/y * (1 - d^n) + F*d^n,  d = m/(m+y), n = maturity*m
//
// where c is the per-period coupon and m the payment frequency.
func Price(faceValue, couponRate, yield float64, periods int, maturity float64) float64 {
	m := float64(periods)
	c := couponRate * faceValue / m
	d := m / (m + yield)
	n := maturity * m
	dn := math.Pow(d, n)
	return (1-dn)*c*m/yield + faceValue*dn
}

// Yield solves Price(face, coupon, y, periods, maturity) = price for y with
// Newton-Raphson on a central-difference derivative. The closed-form
// derivative of the pricing expression is badly conditioned near small
// yields, so the numeric derivative is used instead.
func Yield(faceValue, couponRate, price float64, periods int, maturity float64) (float64, error) {
	const (
		maxIterations = 100
		tolerance     = 1e-6
		bump          = 1e-7
	)

	y := 0.1
	if couponRate > 0 {
		y = couponRate
	}
	for i := 0; i < maxIterations; i++ {
		p := Price(faceValue, couponRate, y, periods, maturity)
		diff := p - price
		if math.Abs(diff) <= tolerance {
			return y, nil
		}
		dp := (Price(faceValue, couponRate, y+bump, periods, maturity) -
			Price(faceValue, couponRate, y-bump, periods, maturity)) / (2 * bump)
		if dp == 0 || math.IsNaN(dp) {
			return 0, ErrNoConvergence
		}
		y -= diff / dp
		if y <= 0 {
			// Keep the iterate inside the domain of the pricing formula.
			y = tolerance
		}
	}
	return 0, ErrNoConvergence
}

// Duration returns the Macaulay duration in coupon periods: the
// value-weighted average timing of the bond's cash flows divided by price.
func Duration(faceValue, couponRate, yield float64, periods int, maturity float64) float64 {
	m := float64(periods)
	r := 1.0 + yield/m
	d := 1.0

	weighted := 0.0
	n := int(m * maturity)
	for i := 0; i < n; i++ {
		d *= r
		weighted += float64(i+1) / d
	}
	weighted *= couponRate * faceValue / m
	weighted += m * maturity * faceValue / d

	return weighted / Price(faceValue, couponRate, yield, periods, maturity)
}
