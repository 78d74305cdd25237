// Package vecops provides data-parallel arithmetic primitives over contiguous
// float64 buffers: elementwise operations, reductions, and dot product.
//
// Each operation has a portable scalar path and an accelerated path selected
// at build time by architecture build tags (amd64, arm64, generic fallback).
// All hardware-specific code lives in this package; callers see one interface.
//
// The primitives are a permissive internal boundary: zero-length inputs yield
// a neutral value (0 for sum-like reductions) or are a no-op for elementwise
// writes. They never allocate and never panic on short buffers; elementwise
// ops operate over the shortest of the supplied slices.
package vecops

import "math"

// Backend identifies the data-parallel instruction set active for this build.
type Backend string

const (
	BackendAVX    Backend = "AVX"
	BackendSSE    Backend = "SSE"
	BackendNEON   Backend = "NEON"
	BackendScalar Backend = "Scalar"
)

// active is computed once during package init and never mutated afterwards,
// so unsynchronized reads from any goroutine are safe.
var active = detectBackend()

// Active reports which backend was selected for this process.
func Active() Backend { return active }

func opLen(dst, a, b []float64) int {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	return n
}

// Add computes dst[i] = a[i] + b[i] over the common length of the slices.
func Add(dst, a, b []float64) {
	n := opLen(dst, a, b)
	if n == 0 {
		return
	}
	addBlock(dst[:n], a[:n], b[:n])
}

// Sub computes dst[i] = a[i] - b[i].
func Sub(dst, a, b []float64) {
	n := opLen(dst, a, b)
	if n == 0 {
		return
	}
	subBlock(dst[:n], a[:n], b[:n])
}

// Mul computes dst[i] = a[i] * b[i].
func Mul(dst, a, b []float64) {
	n := opLen(dst, a, b)
	if n == 0 {
		return
	}
	mulBlock(dst[:n], a[:n], b[:n])
}

// Div computes dst[i] = a[i] / b[i]. Division by zero follows IEEE-754
// semantics (±Inf or NaN), matching the scalar expression a[i]/b[i].
func Div(dst, a, b []float64) {
	n := opLen(dst, a, b)
	if n == 0 {
		return
	}
	divBlock(dst[:n], a[:n], b[:n])
}

// AddScalar computes dst[i] = a[i] + s.
func AddScalar(dst, a []float64, s float64) {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if n == 0 {
		return
	}
	addScalarBlock(dst[:n], a[:n], s)
}

// MulScalar computes dst[i] = a[i] * s.
func MulScalar(dst, a []float64, s float64) {
	n := len(dst)
	if len(a) < n {
		n = len(a)
	}
	if n == 0 {
		return
	}
	mulScalarBlock(dst[:n], a[:n], s)
}

// Sum returns the sum of all elements. Empty input returns 0.
func Sum(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return sumBlock(a)
}

// Mean returns the arithmetic mean. Empty input returns 0.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return sumBlock(a) / float64(len(a))
}

// Variance returns the population variance using a two-pass algorithm:
// the mean is computed first, then the mean of squared deviations from it.
// Empty input returns 0.
func Variance(a []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	mean := sumBlock(a) / float64(n)
	return sqDevSumBlock(a, mean) / float64(n)
}

// StdDev returns the population standard deviation, sqrt(Variance).
func StdDev(a []float64) float64 {
	return math.Sqrt(Variance(a))
}

// Min returns the smallest element. The accumulator is seeded with the first
// element, so all-equal and all-negative inputs behave as expected.
// Empty input returns 0.
func Min(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return minBlock(a)
}

// Max returns the largest element, seeded with the first element.
// Empty input returns 0.
func Max(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return maxBlock(a)
}

// Dot returns sum(a[i] * b[i]) over the common length. Empty input returns 0.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	return dotBlock(a[:n], b[:n])
}

// ConditionalSum sums the strictly-positive elements when positive is true,
// or the absolute values of the strictly-negative elements when false.
// Zeros contribute to neither sum.
func ConditionalSum(a []float64, positive bool) float64 {
	if len(a) == 0 {
		return 0
	}
	return condSumBlock(a, positive)
}
