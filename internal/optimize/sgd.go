// Package optimize implements perturbed gradient descent for smooth
// non-convex objectives.
//
// Plain gradient descent stalls at saddle points where the gradient
// vanishes without the point being a minimum. Whenever the gradient norm
// meets tolerance, the iterate is kicked by a small uniform-ball
// perturbation; a saddle lets the kick escape, while a true minimum pulls
// the iterate straight back. After maxEscapes kicks that all fall back to
// the same point, the point is accepted.
package optimize

import (
	"errors"
	"math"
	"math/rand"

	"finmath/internal/vecops"
)

// GradFunc returns the objective gradient at x.
type GradFunc func(x []float64) []float64

// ErrDimensionMismatch is returned when the gradient length differs from
// the parameter length.
var ErrDimensionMismatch = errors.New("gradient dimension mismatch")

// ErrNoConvergence is returned when the iteration budget is exhausted
// before the gradient norm falls below tolerance.
var ErrNoConvergence = errors.New("optimizer failed to converge")

// Consecutive failed escape attempts before a stationary point is
// accepted as a minimum.
const maxEscapes = 3

// Params tunes Minimize. Zero values select the defaults documented on
// each field.
type Params struct {
	// LearningRate is the descent step size. Default 0.01.
	LearningRate float64
	// Momentum is the exponential decay of the gradient average in
	// [0, 1). Default 0.9.
	Momentum float64
	// MaxIterations bounds the descent loop. Default 10000.
	MaxIterations int
	// Tolerance is the gradient norm below which the iterate is
	// considered stationary. Default 1e-6.
	Tolerance float64
	// PerturbRadius is the ball radius for saddle escapes. Default
	// sqrt(Tolerance).
	PerturbRadius float64
	// MaxGradNorm clips each raw gradient before averaging. Default 100.
	MaxGradNorm float64
	// Seed fixes the perturbation stream. Default 1.
	Seed int64
}

func (p Params) withDefaults() Params {
	if p.LearningRate <= 0 {
		p.LearningRate = 0.01
	}
	if p.Momentum <= 0 || p.Momentum >= 1 {
		p.Momentum = 0.9
	}
	if p.MaxIterations <= 0 {
		p.MaxIterations = 10000
	}
	if p.Tolerance <= 0 {
		p.Tolerance = 1e-6
	}
	if p.PerturbRadius <= 0 {
		p.PerturbRadius = math.Sqrt(p.Tolerance)
	}
	if p.MaxGradNorm <= 0 {
		p.MaxGradNorm = 100
	}
	if p.Seed == 0 {
		p.Seed = 1
	}
	return p
}

// Minimize descends grad from x0 and returns the final iterate. x0 is not
// modified.
func Minimize(grad GradFunc, x0 []float64, params Params) ([]float64, error) {
	p := params.withDefaults()
	rng := rand.New(rand.NewSource(p.Seed))

	x := make([]float64, len(x0))
	copy(x, x0)
	avg := make([]float64, len(x))
	step := make([]float64, len(x))
	anchor := make([]float64, len(x))

	// An iterate that lands this far from its perturbation anchor has
	// genuinely escaped rather than fallen back.
	escapeDist := 10 * p.PerturbRadius
	escapes := 0

	for i := 0; i < p.MaxIterations; i++ {
		g := grad(x)
		if len(g) != len(x) {
			return nil, ErrDimensionMismatch
		}
		clipNorm(g, p.MaxGradNorm)

		if norm(g) <= p.Tolerance {
			if escapes > 0 && distance(x, anchor) > escapeDist {
				escapes = 0
			}
			if escapes >= maxEscapes {
				return x, nil
			}
			copy(anchor, x)
			sampleUniformBall(rng, step, p.PerturbRadius)
			vecops.Add(x, x, step)
			for j := range avg {
				avg[j] = 0
			}
			escapes++
			continue
		}

		for j := range avg {
			avg[j] = p.Momentum*avg[j] + (1-p.Momentum)*g[j]
		}
		vecops.MulScalar(step, avg, -p.LearningRate)
		vecops.Add(x, x, step)
	}
	return x, ErrNoConvergence
}

func norm(a []float64) float64 {
	return math.Sqrt(vecops.Dot(a, a))
}

func distance(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// clipNorm rescales a in place so its norm does not exceed limit.
func clipNorm(a []float64, limit float64) {
	n := norm(a)
	if n > limit {
		vecops.MulScalar(a, a, limit/n)
	}
}

// sampleUniformBall fills dst with a point drawn uniformly from the ball
// of the given radius. A Gaussian direction scaled by a radius raised to
// 1/dim gives the uniform volume density.
func sampleUniformBall(rng *rand.Rand, dst []float64, radius float64) {
	if len(dst) == 0 {
		return
	}
	for i := range dst {
		dst[i] = rng.NormFloat64()
	}
	n := norm(dst)
	if n == 0 {
		dst[0] = radius
		return
	}
	r := radius * math.Pow(rng.Float64(), 1/float64(len(dst)))
	vecops.MulScalar(dst, dst, r/n)
}
