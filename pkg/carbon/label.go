// Package carbon derives carbon types and the X, Y and Theta matrices from
// an atom full table.
//
// A carbon type is the vector of per-group match counts of a carbon atom.
// Atoms with identical vectors share a type. The vector is always built in
// the group order of the AtomTable it comes from, and the same order is used
// for labels, Y columns and Theta rows, otherwise types would silently
// diverge.
package carbon

import (
	"fmt"
	"strconv"
	"strings"
)

// IsCarbon returns true if an atom type code denotes carbon. Only the first
// character is checked, in either case.
func IsCarbon(typ string) bool {
	return strings.HasPrefix(typ, "C") || strings.HasPrefix(typ, "c")
}

// Label returns the canonical label of a count vector, for example "(1, 0)".
func Label(counts []int) string {
	ss := make([]string, len(counts))
	for i, v := range counts {
		ss[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(ss, ", ") + ")"
}

// ParseLabel converts a label created by Label back to its count vector.
func ParseLabel(label string) ([]int, error) {
	if !strings.HasPrefix(label, "(") || !strings.HasSuffix(label, ")") {
		return nil, fmt.Errorf("carbon type label %q is not parenthesized", label)
	}
	body := label[1 : len(label)-1]
	if body == "" {
		return []int{}, nil
	}
	fields := strings.Split(body, ", ")
	res := make([]int, len(fields))
	for i, v := range fields {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("carbon type label %q: %w", label, err)
		}
		res[i] = n
	}
	return res, nil
}
