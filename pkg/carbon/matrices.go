package carbon

import (
	"github.com/aprl-ssp/ctypes/pkg/table"
)

// Atom identifies one row of the per-atom group-count table.
type Atom struct {
	Compound string
	Atom     string
	Type     string
}

type atomGroup struct {
	atom  Atom
	group string
}

// AtomTable is the per-atom group-count table of carbon atoms: one row per
// (compound, atom, type), one column per functional group.
type AtomTable struct {
	// Groups is the fixed column order.
	Groups *table.Categories
	// Atoms are the rows in order of first appearance.
	Atoms []Atom
	// Counts holds the group-count vector of every atom.
	Counts [][]int
	// Labels holds the carbon-type label of every atom.
	Labels []string
}

// NewAtomTable keeps the carbon records, counts non-missing matches per
// atom and group, and pivots groups into columns. Absent atom and group
// combinations are zero.
func NewAtomTable(recs []table.MatchRecord) *AtomTable {
	groups := table.NewCategories()
	atoms := table.NewCounter[Atom]()
	cnt := table.NewCounter[atomGroup]()

	for _, r := range recs {
		if !IsCarbon(r.Type) {
			continue
		}
		a := Atom{Compound: r.Compound, Atom: r.Atom, Type: r.Type}
		groups.Add(r.Group)
		atoms.Add(a, 1)
		n := 0
		if r.HasMatch {
			n = 1
		}
		cnt.Add(atomGroup{atom: a, group: r.Group}, n)
	}

	res := &AtomTable{
		Groups: groups,
		Atoms:  atoms.Keys(),
	}
	res.Counts = make([][]int, len(res.Atoms))
	res.Labels = make([]string, len(res.Atoms))
	gs := groups.Labels()
	for i, a := range res.Atoms {
		vec := make([]int, len(gs))
		for j, g := range gs {
			vec[j] = cnt.Get(atomGroup{atom: a, group: g})
		}
		res.Counts[i] = vec
		res.Labels[i] = Label(vec)
	}
	return res
}

// Len returns the number of carbon atoms.
func (t *AtomTable) Len() int {
	return len(t.Atoms)
}

// Types returns the distinct carbon-type labels in order of first
// appearance.
func (t *AtomTable) Types() []string {
	return table.Distinct(t.Labels)
}

// YMatrix returns the compound by carbon-type matrix: the number of carbon
// atoms of every type in every compound. Columns follow the row order of
// ThetaMatrix.
func (t *AtomTable) YMatrix() *table.Matrix {
	compounds := table.NewCategories()
	cnt := table.NewCounter[table.Pair]()
	for i, a := range t.Atoms {
		compounds.Add(a.Compound)
		cnt.Add(table.Pair{Row: a.Compound, Col: t.Labels[i]}, 1)
	}
	types := table.NewCategories(t.Types()...)
	return table.Pivot("compound", compounds, types, cnt)
}

// ThetaMatrix returns the carbon-type by group matrix: one row per distinct
// group-count vector, indexed by its label.
func (t *AtomTable) ThetaMatrix() *table.Matrix {
	types := t.Types()
	res := table.NewMatrix("ctype", types, t.Groups.Labels())
	done := make(map[string]struct{}, len(types))
	for i, label := range t.Labels {
		if _, ok := done[label]; ok {
			continue
		}
		done[label] = struct{}{}
		row, _ := res.RowIndex(label)
		for j, v := range t.Counts[i] {
			res.Set(row, j, float64(v))
		}
	}
	return res
}

type compoundMatch struct {
	compound, match, group string
	hasMatch               bool
}

// XMatrix returns the compound by group matrix of the whole table,
// regardless of atom type. Every distinct (compound, match, group) triple
// counts once if its match is not missing.
func XMatrix(recs []table.MatchRecord) *table.Matrix {
	compounds := table.NewCategories()
	groups := table.NewCategories()
	triples := make([]compoundMatch, len(recs))
	for i, r := range recs {
		compounds.Add(r.Compound)
		groups.Add(r.Group)
		triples[i] = compoundMatch{
			compound: r.Compound,
			match:    r.Match,
			group:    r.Group,
			hasMatch: r.HasMatch,
		}
	}

	cnt := table.NewCounter[table.Pair]()
	for _, v := range table.Distinct(triples) {
		n := 0
		if v.hasMatch {
			n = 1
		}
		cnt.Add(table.Pair{Row: v.compound, Col: v.group}, n)
	}
	return table.Pivot("compound", compounds, groups, cnt)
}

// Matrices groups the three outputs of the carbon-type analysis.
type Matrices struct {
	// Atoms is the per-atom group-count table behind Y and Theta.
	Atoms *AtomTable
	X     *table.Matrix
	Y     *table.Matrix
	Theta *table.Matrix
}

// Build derives X, Y and Theta from an atom full table.
func Build(recs []table.MatchRecord) *Matrices {
	atoms := NewAtomTable(recs)
	return &Matrices{
		Atoms: atoms,
		X:     XMatrix(recs),
		Y:     atoms.YMatrix(),
		Theta: atoms.ThetaMatrix(),
	}
}
