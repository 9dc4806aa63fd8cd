package table_test

import (
	"testing"

	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixEmpty(t *testing.T) {
	tests := []struct {
		msg        string
		rows, cols []string
	}{
		{"no rows", nil, []string{"a"}},
		{"no cols", []string{"a"}, nil},
		{"nothing", nil, nil},
	}

	for _, v := range tests {
		m := table.NewMatrix("idx", v.rows, v.cols)
		r, c := m.Dims()
		assert.Equal(t, len(v.rows), r, v.msg)
		assert.Equal(t, len(v.cols), c, v.msg)
		assert.Equal(t, 0.0, m.Min(), v.msg)
		assert.Equal(t, 0.0, m.Sum(), v.msg)
		recs := m.Records()
		require.Len(t, recs, r+1, v.msg)
		assert.Equal(t, "idx", recs[0][0], v.msg)
	}
}

func TestMatrixRecords(t *testing.T) {
	m := table.NewMatrix("compound", []string{"m1", "m2"}, []string{"OH", "(1, 0)"})
	m.Set(0, 1, 3)
	m.Set(1, 0, 0.5)

	recs := m.Records()
	assert.Equal(t, [][]string{
		{"compound", "OH", "(1, 0)"},
		{"m1", "0", "3"},
		{"m2", "0.5", "0"},
	}, recs)
	assert.Equal(t, 3.5, m.Sum())
	assert.Equal(t, []float64{0, 3}, m.Row(0))
	assert.Equal(t, []float64{3, 0}, m.Col(1))
}

func TestMatrixReindex(t *testing.T) {
	m := table.NewMatrix("compound", []string{"m1"}, []string{"C", "O"})
	m.Set(0, 0, 4)
	m.Set(0, 1, 1)

	res := m.Reindex([]string{"m2", "m1"}, []string{"O", "N", "C"})
	assert.Equal(t, "compound", res.IndexName)
	assert.Equal(t, []string{"m2", "m1"}, res.Rows())
	assert.Equal(t, []string{"O", "N", "C"}, res.Cols())

	tests := []struct {
		row, col string
		res      float64
	}{
		{"m2", "O", 0},
		{"m2", "N", 0},
		{"m2", "C", 0},
		{"m1", "O", 1},
		{"m1", "N", 0},
		{"m1", "C", 4},
	}
	for _, v := range tests {
		val, ok := res.Value(v.row, v.col)
		assert.True(t, ok)
		assert.Equal(t, v.res, val, v.row+"/"+v.col)
	}
}
