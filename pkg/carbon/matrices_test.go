package carbon_test

import (
	"testing"

	"github.com/aprl-ssp/ctypes/pkg/carbon"
	"github.com/aprl-ssp/ctypes/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(compound, atom, typ, group, match string) table.MatchRecord {
	return table.NewMatchRecord(compound, atom, typ, group, match)
}

func pineneRecords() []table.MatchRecord {
	return []table.MatchRecord{
		rec("pinene", "C1", "C", "OH", "1"),
		rec("pinene", "C1", "C", "CO", ""),
		rec("pinene", "C2", "C", "OH", "2"),
		rec("pinene", "C2", "C", "CO", ""),
	}
}

func sampleRecords() []table.MatchRecord {
	return []table.MatchRecord{
		rec("m1", "C1", "C", "alcohol", "1"),
		rec("m1", "C1", "C", "ketone", ""),
		rec("m1", "C2", "C", "alcohol", ""),
		rec("m1", "C2", "C", "ketone", "2"),
		rec("m1", "O3", "O", "alcohol", "1"),
		rec("m1", "O3", "O", "ketone", ""),
		rec("m1", "O4", "O", "ketone", "2"),
		rec("m2", "C1", "C", "alcohol", "1"),
		rec("m2", "C1", "C", "ketone", ""),
		rec("m2", "C2", "c", "alcohol", ""),
		rec("m2", "C2", "c", "ketone", ""),
		rec("m2", "O3", "O", "alcohol", "1"),
		rec("m3", "H1", "H", "alcohol", ""),
	}
}

func TestPineneExample(t *testing.T) {
	res := carbon.Build(pineneRecords())

	require.Equal(t, 2, res.Atoms.Len())
	assert.Equal(t, []string{"(1, 0)", "(1, 0)"}, res.Atoms.Labels)

	v, ok := res.Y.Value("pinene", "(1, 0)")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	r, c := res.Theta.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []string{"(1, 0)"}, res.Theta.Rows())
	assert.Equal(t, "ctype", res.Theta.IndexName)

	oh, _ := res.Theta.Value("(1, 0)", "OH")
	co, _ := res.Theta.Value("(1, 0)", "CO")
	assert.Equal(t, 1.0, oh)
	assert.Equal(t, 0.0, co)
}

func TestAtomTable(t *testing.T) {
	tbl := carbon.NewAtomTable(sampleRecords())

	assert.Equal(t, []string{"alcohol", "ketone"}, tbl.Groups.Labels())
	assert.Equal(t, []carbon.Atom{
		{Compound: "m1", Atom: "C1", Type: "C"},
		{Compound: "m1", Atom: "C2", Type: "C"},
		{Compound: "m2", Atom: "C1", Type: "C"},
		{Compound: "m2", Atom: "C2", Type: "c"},
	}, tbl.Atoms)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}, {1, 0}, {0, 0}}, tbl.Counts)
	assert.Equal(t,
		[]string{"(1, 0)", "(0, 1)", "(1, 0)", "(0, 0)"},
		tbl.Labels,
	)
	assert.Equal(t, []string{"(1, 0)", "(0, 1)", "(0, 0)"}, tbl.Types())
}

func TestXMatrix(t *testing.T) {
	recs := append(sampleRecords(),
		// duplicated triple counts once
		rec("m1", "C5", "C", "alcohol", "1.0"),
	)
	x := carbon.XMatrix(recs)

	assert.Equal(t, "compound", x.IndexName)
	assert.Equal(t, []string{"m1", "m2", "m3"}, x.Rows())
	assert.Equal(t, []string{"alcohol", "ketone"}, x.Cols())

	tests := []struct {
		row, col string
		res      float64
	}{
		{"m1", "alcohol", 1},
		{"m1", "ketone", 1},
		{"m2", "alcohol", 1},
		{"m2", "ketone", 0},
		{"m3", "alcohol", 0},
		{"m3", "ketone", 0},
	}
	for _, v := range tests {
		val, ok := x.Value(v.row, v.col)
		require.True(t, ok)
		assert.Equal(t, v.res, val, v.row+"/"+v.col)
	}
}

func TestYMatrix(t *testing.T) {
	res := carbon.Build(sampleRecords())

	assert.Equal(t, []string{"m1", "m2"}, res.Y.Rows())
	assert.Equal(t, []string{"(1, 0)", "(0, 1)", "(0, 0)"}, res.Y.Cols())
	assert.Equal(t, []float64{1, 1, 0}, res.Y.Row(0))
	assert.Equal(t, []float64{1, 0, 1}, res.Y.Row(1))
}

func TestMatrixProperties(t *testing.T) {
	inputs := map[string][]table.MatchRecord{
		"pinene": pineneRecords(),
		"sample": sampleRecords(),
		"empty":  nil,
	}

	for name, recs := range inputs {
		t.Run(name, func(t *testing.T) {
			res := carbon.Build(recs)

			t.Run("no negative cells", func(t *testing.T) {
				for _, m := range []*table.Matrix{res.X, res.Y, res.Theta} {
					assert.GreaterOrEqual(t, m.Min(), 0.0)
				}
			})

			t.Run("one theta row per distinct vector", func(t *testing.T) {
				r, _ := res.Theta.Dims()
				assert.LessOrEqual(t, r, res.Atoms.Len())
				seen := make(map[string]bool)
				for _, v := range res.Atoms.Counts {
					seen[carbon.Label(v)] = true
				}
				assert.Equal(t, len(seen), r)
			})

			t.Run("y columns are theta rows", func(t *testing.T) {
				assert.Equal(t, res.Theta.Rows(), res.Y.Cols())
			})

			t.Run("theta rows reproduce labels", func(t *testing.T) {
				r, _ := res.Theta.Dims()
				for i, label := range res.Theta.Rows() {
					vec, err := carbon.ParseLabel(label)
					require.NoError(t, err)
					row := res.Theta.Row(i)
					require.Len(t, row, len(vec))
					for j := range vec {
						assert.Equal(t, float64(vec[j]), row[j])
					}
				}
				assert.Equal(t, len(res.Theta.Rows()), r)
			})

			t.Run("y counts every carbon atom", func(t *testing.T) {
				assert.Equal(t, float64(res.Atoms.Len()), res.Y.Sum())
			})
		})
	}
}

func TestBuildWithoutCarbon(t *testing.T) {
	recs := []table.MatchRecord{
		rec("water", "O1", "O", "alcohol", ""),
		rec("water", "H2", "H", "alcohol", ""),
	}
	res := carbon.Build(recs)

	assert.Equal(t, 0, res.Atoms.Len())
	r, c := res.Y.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
	r, c = res.Theta.Dims()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)

	r, c = res.X.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	v, _ := res.X.Value("water", "alcohol")
	assert.Equal(t, 0.0, v)
}
