//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package cog

import (
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix - n x n grid of distances between the reflexes of one set; Labels[i] names row i and column i
type DistanceMatrix struct {
	Labels []string
	dense  *mat.Dense // nil if n == 0: gonum refuses zero-sized matrices
}

// BuildMatrix - fill in every cell, diagonal included; m(a, b) and m(b, a) are evaluated separately
func BuildMatrix(labels []string, m Measure) DistanceMatrix {
	m = orDefault(m)
	n := len(labels)
	dm := DistanceMatrix{Labels: append([]string(nil), labels...)}
	if n == 0 {
		return dm
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = m(labels[i], labels[j])
		}
	}
	dm.dense = mat.NewDense(n, n, data)
	return dm
}

// Size - n
func (d DistanceMatrix) Size() int {
	return len(d.Labels)
}

// At - the distance from reflex i to reflex j
func (d DistanceMatrix) At(i, j int) float64 {
	return d.dense.At(i, j)
}

// Rows - the matrix as [][]float64: the n² cells in row-major order, chopped into rows of n
func (d DistanceMatrix) Rows() [][]float64 {
	n := d.Size()
	if n == 0 {
		return [][]float64{}
	}
	flat := append([]float64(nil), d.dense.RawMatrix().Data...)
	return gen.ChunkSlice(flat, n)
}

// Sum - total of all n² cells
func (d DistanceMatrix) Sum() float64 {
	if d.dense == nil {
		return 0
	}
	return mat.Sum(d.dense)
}

// IsSymmetric - true if m(a, b) == m(b, a) for every pair
func (d DistanceMatrix) IsSymmetric() bool {
	if d.dense == nil {
		return true
	}
	return mat.Equal(d.dense, d.dense.T())
}
