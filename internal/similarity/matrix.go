// Package similarity turns an entity-by-feature matrix into a pairwise cosine
// similarity matrix.
package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EntityMatrix pairs entity identifiers with one feature row each.
// Row order is entity order for every later stage.
type EntityMatrix struct {
	IDs      []string
	Features [][]float64
}

// Dims returns the row count and the width of the first row.
func (m EntityMatrix) Dims() (rows, cols int) {
	rows = len(m.Features)
	if rows > 0 {
		cols = len(m.Features[0])
	}
	return rows, cols
}

// Validate checks the shape the cosine computation needs.
func (m EntityMatrix) Validate() error {
	rows, cols := m.Dims()
	if len(m.IDs) != rows {
		return &InvalidInputError{Rows: rows, Cols: cols, Row: -1,
			Reason: fmt.Sprintf("%d identifiers for %d feature rows", len(m.IDs), rows)}
	}
	if rows < 2 {
		return &InvalidInputError{Rows: rows, Cols: cols, Row: -1, Reason: "at least 2 entities are required"}
	}
	for i, row := range m.Features {
		switch {
		case len(row) == 0:
			return &InvalidInputError{Rows: rows, Cols: cols, Row: i, ID: m.IDs[i], Reason: "row has no features"}
		case len(row) != cols:
			return &InvalidInputError{Rows: rows, Cols: cols, Row: i, ID: m.IDs[i],
				Reason: fmt.Sprintf("row has %d features, expected %d", len(row), cols)}
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InvalidInputError{Rows: rows, Cols: cols, Row: i, ID: m.IDs[i],
					Reason: fmt.Sprintf("feature %d is not finite", j)}
			}
		}
	}
	return nil
}

// Matrix is a symmetric N x N similarity matrix indexed in entity order.
type Matrix struct {
	ids []string
	sym *mat.SymDense
}

// NewMatrix wraps precomputed similarity values. values must be square and
// symmetric with the same order as ids.
func NewMatrix(ids []string, values [][]float64) (*Matrix, error) {
	n := len(ids)
	if len(values) != n {
		return nil, fmt.Errorf("similarity matrix has %d rows for %d ids", len(values), n)
	}
	sym := mat.NewSymDense(max(n, 1), nil)
	for i := 0; i < n; i++ {
		if len(values[i]) != n {
			return nil, fmt.Errorf("similarity matrix row %d has %d columns, expected %d", i, len(values[i]), n)
		}
		for j := i; j < n; j++ {
			if values[i][j] != values[j][i] {
				return nil, fmt.Errorf("similarity matrix is not symmetric at (%d,%d)", i, j)
			}
			sym.SetSym(i, j, values[i][j])
		}
	}
	return &Matrix{ids: append([]string(nil), ids...), sym: sym}, nil
}

// Len returns the number of entities.
func (m *Matrix) Len() int { return len(m.ids) }

// IDs returns a copy of the entity identifiers.
func (m *Matrix) IDs() []string { return append([]string(nil), m.ids...) }

// ID returns the identifier at index i.
func (m *Matrix) ID(i int) string { return m.ids[i] }

// At returns sim(i, j).
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }
