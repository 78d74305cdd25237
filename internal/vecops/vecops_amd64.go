//go:build amd64 && !novec

package vecops

import "golang.org/x/sys/cpu"

// x86-64 kernels. The loops process 4 float64 at a time (one 256-bit AVX
// register) in a shape the compiler auto-vectorizes, with independent
// accumulators to break the reduction dependency chain, followed by a scalar
// cleanup loop for the n mod 4 remainder.

var hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

func detectBackend() Backend {
	if hasAVX2 {
		return BackendAVX
	}
	// SSE2 is baseline on amd64.
	return BackendSSE
}

func addBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] / b[i]
		dst[i+1] = a[i+1] / b[i+1]
		dst[i+2] = a[i+2] / b[i+2]
		dst[i+3] = a[i+3] / b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func addScalarBlock(dst, a []float64, s float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + s
		dst[i+1] = a[i+1] + s
		dst[i+2] = a[i+2] + s
		dst[i+3] = a[i+3] + s
	}
	for ; i < n; i++ {
		dst[i] = a[i] + s
	}
}

func mulScalarBlock(dst, a []float64, s float64) {
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
		dst[i+2] = a[i+2] * s
		dst[i+3] = a[i+3] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func sumBlock(a []float64) float64 {
	n := len(a)
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i]
	}
	return s0 + s1 + s2 + s3
}

func dotBlock(a, b []float64) float64 {
	n := len(a)
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1 + s2 + s3
}

func sqDevSumBlock(a []float64, mean float64) float64 {
	n := len(a)
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - mean
		d1 := a[i+1] - mean
		d2 := a[i+2] - mean
		d3 := a[i+3] - mean
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - mean
		s0 += d * d
	}
	return s0 + s1 + s2 + s3
}

func minBlock(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxBlock(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func condSumBlock(a []float64, positive bool) float64 {
	var sum float64
	if positive {
		for _, v := range a {
			if v > 0 {
				sum += v
			}
		}
		return sum
	}
	for _, v := range a {
		if v < 0 {
			sum -= v
		}
	}
	return sum
}
