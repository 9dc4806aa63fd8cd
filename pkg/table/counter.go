package table

// Pair is a composite (row, column) key used to pivot a counter into a
// Matrix.
type Pair struct {
	Row, Col string
}

// Counter maps composite keys to counts and remembers the order in which
// keys were first seen.
type Counter[K comparable] struct {
	keys   []K
	counts map[K]int
}

// NewCounter creates an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

// Add increases the count of k by n. A key added with n == 0 is still
// registered, the same way a group with only missing values still exists.
func (c *Counter[K]) Add(k K, n int) {
	if _, ok := c.counts[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.counts[k] += n
}

// Get returns the count of k, or 0 if k was never added.
func (c *Counter[K]) Get(k K) int {
	return c.counts[k]
}

// Has returns true if k was added.
func (c *Counter[K]) Has(k K) bool {
	_, ok := c.counts[k]
	return ok
}

// Keys returns the keys in order of first appearance.
func (c *Counter[K]) Keys() []K {
	res := make([]K, len(c.keys))
	copy(res, c.keys)
	return res
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	return len(c.keys)
}

// Distinct returns the unique elements of items in order of first
// appearance.
func Distinct[K comparable](items []K) []K {
	seen := make(map[K]struct{}, len(items))
	var res []K
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// Pivot materializes a counter of (row, col) pairs into a dense matrix.
// Rows and columns come from the given category sets, so their order is
// fixed by the caller. Pairs outside of the sets are ignored, and
// combinations that were never counted are zero.
func Pivot(indexName string, rows, cols *Categories, c *Counter[Pair]) *Matrix {
	res := NewMatrix(indexName, rows.Labels(), cols.Labels())
	for _, k := range c.keys {
		i, ok := rows.Code(k.Row)
		if !ok {
			continue
		}
		j, ok := cols.Code(k.Col)
		if !ok {
			continue
		}
		res.Set(i, j, float64(c.counts[k]))
	}
	return res
}
