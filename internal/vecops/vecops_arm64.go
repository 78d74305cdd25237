//go:build arm64 && !novec

package vecops

// ARM64 kernels. NEON registers hold two float64 lanes, so the loops process
// pairs with a scalar cleanup for odd lengths. NEON is architecturally
// guaranteed on arm64, no runtime probing needed.

func detectBackend() Backend { return BackendNEON }

func addBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divBlock(dst, a, b []float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] / b[i]
		dst[i+1] = a[i+1] / b[i+1]
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func addScalarBlock(dst, a []float64, s float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] + s
		dst[i+1] = a[i+1] + s
	}
	for ; i < n; i++ {
		dst[i] = a[i] + s
	}
}

func mulScalarBlock(dst, a []float64, s float64) {
	n := len(a)
	i := 0
	for ; i+2 <= n; i += 2 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func sumBlock(a []float64) float64 {
	n := len(a)
	var s0, s1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += a[i]
		s1 += a[i+1]
	}
	if i < n {
		s0 += a[i]
	}
	return s0 + s1
}

func dotBlock(a, b []float64) float64 {
	n := len(a)
	var s0, s1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}
	if i < n {
		s0 += a[i] * b[i]
	}
	return s0 + s1
}

func sqDevSumBlock(a []float64, mean float64) float64 {
	n := len(a)
	var s0, s1 float64
	i := 0
	for ; i+2 <= n; i += 2 {
		d0 := a[i] - mean
		d1 := a[i+1] - mean
		s0 += d0 * d0
		s1 += d1 * d1
	}
	if i < n {
		d := a[i] - mean
		s0 += d * d
	}
	return s0 + s1
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
