package statmodels

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadComponents is returned when the requested component count is not
// in [1, number of features].
var ErrBadComponents = errors.New("component count out of range")

// PCA holds a fitted principal component basis.
type PCA struct {
	mean       []float64
	components *mat.Dense // features x k, columns are principal axes
	variances  []float64  // variance captured by each component
	total      float64    // total variance across all features
}

// FitPCA extracts the leading k principal components of data, where each
// row of data is one observation. Components are computed from the thin
// SVD of the centered data matrix.
func FitPCA(data [][]float64, k int) (*PCA, error) {
	n := len(data)
	if n < 2 {
		return nil, ErrInsufficientData
	}
	features := len(data[0])
	if k < 1 || k > features {
		return nil, ErrBadComponents
	}

	mean := make([]float64, features)
	for _, row := range data {
		if len(row) != features {
			return nil, errors.New("ragged observation matrix")
		}
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	centered := mat.NewDense(n, features, nil)
	for i, row := range data {
		for j, v := range row {
			centered.Set(i, j, v-mean[j])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, errors.New("svd factorization failed")
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	components := mat.NewDense(features, k, nil)
	variances := make([]float64, k)
	total := 0.0
	for _, s := range values {
		total += s * s / float64(n-1)
	}
	for c := 0; c < k; c++ {
		variances[c] = values[c] * values[c] / float64(n-1)
		for j := 0; j < features; j++ {
			components.Set(j, c, v.At(j, c))
		}
	}

	return &PCA{
		mean:       mean,
		components: components,
		variances:  variances,
		total:      total,
	}, nil
}

// Components returns the principal axes as a features x k matrix whose
// columns are unit vectors.
func (p *PCA) Components() *mat.Dense {
	out := mat.DenseCopyOf(p.components)
	return out
}

// ExplainedVariance returns the variance captured by each retained
// component, in decreasing order.
func (p *PCA) ExplainedVariance() []float64 {
	out := make([]float64, len(p.variances))
	copy(out, p.variances)
	return out
}

// ExplainedVarianceRatio returns each retained component's share of the
// total variance.
func (p *PCA) ExplainedVarianceRatio() []float64 {
	out := make([]float64, len(p.variances))
	if p.total == 0 {
		return out
	}
	for i, v := range p.variances {
		out[i] = v / p.total
	}
	return out
}

// Transform projects one observation onto the retained components.
func (p *PCA) Transform(x []float64) ([]float64, error) {
	features, k := p.components.Dims()
	if len(x) != features {
		return nil, errors.New("observation dimension mismatch")
	}
	centered := make([]float64, features)
	for j, v := range x {
		centered[j] = v - p.mean[j]
	}

	out := make([]float64, k)
	for c := 0; c < k; c++ {
		s := 0.0
		for j := 0; j < features; j++ {
			s += centered[j] * p.components.At(j, c)
		}
		out[c] = s
	}
	return out, nil
}

// Reconstruct maps a projection back into feature space.
func (p *PCA) Reconstruct(scores []float64) ([]float64, error) {
	features, k := p.components.Dims()
	if len(scores) != k {
		return nil, errors.New("score dimension mismatch")
	}
	out := make([]float64, features)
	for j := 0; j < features; j++ {
		s := p.mean[j]
		for c := 0; c < k; c++ {
			s += scores[c] * p.components.At(j, c)
		}
		out[j] = s
	}
	return out, nil
}
