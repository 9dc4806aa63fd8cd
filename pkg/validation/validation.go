// Package validation builds the aggregate views used to validate
// substructure matches against ground-truth atom counts: atom
// completeness, functional group specificity and carbon specificity.
//
// Element and group categories are explicit ordered label sets. Records
// whose atom type is not one of the ground-truth elements take no part in
// any view.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aprl-ssp/ctypes/pkg/table"
)

// Carbon is the atype of carbon atoms.
const Carbon = "C"

// Atype returns the single-letter element code of an atom type or a
// ground-truth column name: its first character, uppercased.
func Atype(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

// NormalizeTruth renames the element columns of a ground-truth table to
// their atypes. Two columns with the same atype are an error.
func NormalizeTruth(m *table.Matrix) (*table.Matrix, error) {
	cols := m.Cols()
	atypes := make([]string, len(cols))
	seen := make(map[string]string, len(cols))
	for i, v := range cols {
		at := Atype(v)
		if prev, ok := seen[at]; ok {
			return nil, fmt.Errorf(
				"columns %q and %q both map to element %q", prev, v, at,
			)
		}
		seen[at] = v
		atypes[i] = at
	}

	rows := m.Rows()
	res := table.NewMatrix(m.IndexName, rows, atypes)
	for i := range rows {
		for j := range atypes {
			res.Set(i, j, m.At(i, j))
		}
	}
	return res, nil
}

// Completeness compares matched atom counts with true atom counts for
// every compound and element of the ground truth.
type Completeness struct {
	// Elements are the ground-truth element columns, in file order.
	Elements []string
	// Truth holds the true atom counts, compound by element.
	Truth *table.Matrix
	// Matched holds the number of distinct atoms that took part in at
	// least one match. It has the same rows and columns as Truth and is
	// zero where nothing matched.
	Matched *table.Matrix
}

type atomKey struct {
	compound, atom, atype string
}

// NewCompleteness counts matched atoms per compound and element. Truth
// must already be normalized with NormalizeTruth.
func NewCompleteness(
	recs []table.MatchRecord,
	truth *table.Matrix,
) *Completeness {
	elements := table.NewCategories(truth.Cols()...)
	compounds := table.NewCategories()
	cnt := table.NewCounter[table.Pair]()

	var keys []atomKey
	for _, r := range recs {
		at := Atype(r.Type)
		if !r.HasMatch || !elements.Has(at) {
			continue
		}
		keys = append(keys, atomKey{compound: r.Compound, atom: r.Atom, atype: at})
	}
	for _, k := range table.Distinct(keys) {
		compounds.Add(k.compound)
		cnt.Add(table.Pair{Row: k.compound, Col: k.atype}, 1)
	}

	matched := table.Pivot(truth.IndexName, compounds, elements, cnt)
	return &Completeness{
		Elements: elements.Labels(),
		Truth:    truth,
		Matched:  matched.Reindex(truth.Rows(), elements.Labels()),
	}
}

// Points returns true counts (x) and matched counts (y) of an element,
// one point per ground-truth compound.
func (c *Completeness) Points(element string) (x, y []float64) {
	j, ok := c.Truth.ColIndex(element)
	if !ok {
		return nil, nil
	}
	return c.Truth.Col(j), c.Matched.Col(j)
}

// Points is a categorical scatter: every point has a category code on the
// x axis and a count on the y axis.
type Points struct {
	Categories *table.Categories
	Codes      []int
	Values     []float64
}

// Len returns the number of points.
func (p *Points) Len() int {
	return len(p.Codes)
}

// FGSpecificity counts, for every atom, how many functional group
// candidates matched at it. Categories are the elements that occur among
// the atoms, in element order.
func FGSpecificity(
	recs []table.MatchRecord,
	elements *table.Categories,
) *Points {
	cnt := table.NewCounter[atomKey]()
	for _, r := range recs {
		at := Atype(r.Type)
		if !elements.Has(at) {
			continue
		}
		n := 0
		if r.HasMatch {
			n = 1
		}
		cnt.Add(atomKey{compound: r.Compound, atom: r.Atom, atype: at}, n)
	}

	observed := make(map[string]struct{})
	for _, k := range cnt.Keys() {
		observed[k.atype] = struct{}{}
	}
	cats := elements.Filter(func(s string) bool {
		_, ok := observed[s]
		return ok
	})

	res := &Points{Categories: cats}
	for _, k := range cnt.Keys() {
		code, _ := cats.Code(k.atype)
		res.Codes = append(res.Codes, code)
		res.Values = append(res.Values, float64(cnt.Get(k)))
	}
	return res
}

type groupMatch struct {
	compound, group, match string
}

// CarbonSpecificity counts, for every match of a group in a compound, how
// many carbon atoms took part in it. Categories are the groups, in order
// of first appearance.
func CarbonSpecificity(
	recs []table.MatchRecord,
	elements *table.Categories,
) *Points {
	cats := table.NewCategories()
	res := &Points{Categories: cats}
	if !elements.Has(Carbon) {
		return res
	}

	cnt := table.NewCounter[groupMatch]()
	for _, r := range recs {
		if !r.HasMatch || Atype(r.Type) != Carbon {
			continue
		}
		cnt.Add(groupMatch{compound: r.Compound, group: r.Group, match: r.Match}, 1)
	}

	for _, k := range cnt.Keys() {
		res.Codes = append(res.Codes, cats.Add(k.group))
		res.Values = append(res.Values, float64(cnt.Get(k)))
	}
	return res
}
