package table

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense matrix with labeled rows and columns.
// Cells that were never set are zero.
type Matrix struct {
	// IndexName is the name of the row index, written as the first
	// header cell on export.
	IndexName string

	rows *Categories
	cols *Categories
	// data is nil when the matrix has no rows or no columns.
	data *mat.Dense
}

// NewMatrix creates a zero-filled matrix with the given labels.
// Duplicate labels are collapsed to their first occurrence.
func NewMatrix(indexName string, rows, cols []string) *Matrix {
	res := &Matrix{
		IndexName: indexName,
		rows:      NewCategories(rows...),
		cols:      NewCategories(cols...),
	}
	r, c := res.rows.Len(), res.cols.Len()
	if r > 0 && c > 0 {
		res.data = mat.NewDense(r, c, nil)
	}
	return res
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) {
	return m.rows.Len(), m.cols.Len()
}

// Rows returns the row labels.
func (m *Matrix) Rows() []string {
	return m.rows.Labels()
}

// Cols returns the column labels.
func (m *Matrix) Cols() []string {
	return m.cols.Labels()
}

// RowIndex returns the position of a row label.
func (m *Matrix) RowIndex(label string) (int, bool) {
	return m.rows.Code(label)
}

// ColIndex returns the position of a column label.
func (m *Matrix) ColIndex(label string) (int, bool) {
	return m.cols.Code(label)
}

// At returns the value at row i and column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// Set sets the value at row i and column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data.Set(i, j, v)
}

// Value returns the value at the given row and column labels.
// The second value is false if either label is unknown.
func (m *Matrix) Value(row, col string) (float64, bool) {
	i, ok := m.rows.Code(row)
	if !ok {
		return 0, false
	}
	j, ok := m.cols.Code(col)
	if !ok {
		return 0, false
	}
	return m.data.At(i, j), true
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	_, c := m.Dims()
	if c == 0 {
		return nil
	}
	return mat.Row(nil, i, m.data)
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 {
	r, _ := m.Dims()
	if r == 0 {
		return nil
	}
	return mat.Col(nil, j, m.data)
}

// Min returns the smallest value of the matrix, or 0 for an empty matrix.
func (m *Matrix) Min() float64 {
	if m.data == nil {
		return 0
	}
	return mat.Min(m.data)
}

// Sum returns the sum of all values.
func (m *Matrix) Sum() float64 {
	if m.data == nil {
		return 0
	}
	return mat.Sum(m.data)
}

// Reindex returns a new matrix with the given row and column labels.
// Values of labels present in m are copied, other cells are zero.
func (m *Matrix) Reindex(rows, cols []string) *Matrix {
	res := NewMatrix(m.IndexName, rows, cols)
	for i, r := range res.rows.labels {
		oi, ok := m.rows.Code(r)
		if !ok {
			continue
		}
		for j, c := range res.cols.labels {
			oj, ok := m.cols.Code(c)
			if !ok {
				continue
			}
			res.data.Set(i, j, m.data.At(oi, oj))
		}
	}
	return res
}

// Records returns the matrix as CSV records: a header with the index name
// and column labels, then one record per row with the row label first.
// Values are formatted in their shortest exact form, so counts are written
// as integers.
func (m *Matrix) Records() [][]string {
	r, c := m.Dims()
	res := make([][]string, 0, r+1)
	header := make([]string, 0, c+1)
	header = append(header, m.IndexName)
	header = append(header, m.cols.labels...)
	res = append(res, header)
	for i, label := range m.rows.labels {
		rec := make([]string, 0, c+1)
		rec = append(rec, label)
		for j := 0; j < c; j++ {
			rec = append(rec, strconv.FormatFloat(m.data.At(i, j), 'f', -1, 64))
		}
		res = append(res, rec)
	}
	return res
}
