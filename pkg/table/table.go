// Package table provides the in-memory table abstraction used by the
// carbon-type and validation pipelines.
//
// Aggregations are explicit: rows are folded into ordered counters keyed by
// composite keys, and counters are materialized into dense labeled matrices
// where absent keys become zero. Every ordering in this package is the order
// of first appearance, so results are reproducible for a given input file.
//
// This package has no I/O dependencies.
package table

import (
	"strconv"
	"strings"
)

// MatchRecord is one row of an atom full table produced by the
// substructure matcher. There is one record per compound, atom and
// candidate functional group.
type MatchRecord struct {
	// Compound is the chemical species identifier.
	Compound string
	// Atom identifies the atom within the compound.
	Atom string
	// Type is the element/atom-type code, for example "C" or "O".
	Type string
	// Group is the functional group identifier.
	Group string
	// Match is the canonical form of the match value. It is meaningful only
	// when HasMatch is true.
	Match string
	// HasMatch is false when the match cell was empty or an NA marker.
	HasMatch bool
}

// naValues are the cell values treated as missing, the same set pandas
// recognizes by default.
var naValues = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "#N/A": {}, "<NA>": {},
	"NaN": {}, "nan": {}, "-NaN": {}, "-nan": {}, "NULL": {}, "null": {},
	"None": {}, "#NA": {}, "1.#IND": {}, "1.#QNAN": {}, "-1.#IND": {},
	"-1.#QNAN": {},
}

// IsNA returns true if s denotes a missing value.
func IsNA(s string) bool {
	_, ok := naValues[strings.TrimSpace(s)]
	return ok
}

// ParseMatch converts a raw match cell into its canonical form.
// Numeric values are normalized so that "1" and "1.0" compare equal.
func ParseMatch(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if IsNA(s) {
		return "", false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return s, true
}

// NewMatchRecord creates a record from raw cell values.
func NewMatchRecord(compound, atom, typ, group, match string) MatchRecord {
	m, ok := ParseMatch(match)
	return MatchRecord{
		Compound: compound,
		Atom:     atom,
		Type:     typ,
		Group:    group,
		Match:    m,
		HasMatch: ok,
	}
}
