package similarity

import (
	"gonum.org/v1/gonum/mat"
)

// Cosine computes sim(i,j) = row_i . row_j / (|row_i| |row_j|) for every pair.
//
// The diagonal is 1.0 for every row. A row whose feature vector is all zeros
// has no direction, so its similarity to every other row is 0 rather than NaN.
// Off-diagonal values are clamped to [-1, 1] to absorb rounding.
func Cosine(m EntityMatrix) (*Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	rows, cols := m.Dims()

	x := mat.NewDense(rows, cols, nil)
	for i, row := range m.Features {
		v := mat.NewVecDense(cols, append([]float64(nil), row...))
		if norm := mat.Norm(v, 2); norm != 0 {
			v.ScaleVec(1/norm, v)
		}
		x.SetRow(i, v.RawVector().Data)
	}

	var gram mat.SymDense
	gram.SymOuterK(1, x)

	for i := 0; i < rows; i++ {
		gram.SetSym(i, i, 1)
		for j := i + 1; j < rows; j++ {
			gram.SetSym(i, j, clamp(gram.At(i, j)))
		}
	}

	return &Matrix{ids: append([]string(nil), m.IDs...), sym: &gram}, nil
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
