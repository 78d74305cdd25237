//go:build (!amd64 && !arm64) || novec

package vecops

import "github.com/viterin/vek"

// Portable fallback for targets without a hand-tuned kernel set. vek keeps
// reasonable throughput through cache-friendly pure Go loops; the backend
// still reports Scalar because no fixed-width lanes are guaranteed here.

func detectBackend() Backend { return BackendScalar }

func addBlock(dst, a, b []float64) { vek.Add_Into(dst, a, b) }

func subBlock(dst, a, b []float64) { vek.Sub_Into(dst, a, b) }

func mulBlock(dst, a, b []float64) { vek.Mul_Into(dst, a, b) }

func divBlock(dst, a, b []float64) { vek.Div_Into(dst, a, b) }

func addScalarBlock(dst, a []float64, s float64) { vek.AddNumber_Into(dst, a, s) }

func mulScalarBlock(dst, a []float64, s float64) { vek.MulNumber_Into(dst, a, s) }

func sumBlock(a []float64) float64 { return vek.Sum(a) }

func dotBlock(a, b []float64) float64 { return vek.Dot(a, b) }

func minBlock(a []float64) float64 { return vek.Min(a) }

func maxBlock(a []float64) float64 { return vek.Max(a) }

func sqDevSumBlock(a []float64, mean float64) float64 {
	var sum float64
	for _, v := range a {
		d := v - mean
		sum += d * d
	}
	return sum
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
