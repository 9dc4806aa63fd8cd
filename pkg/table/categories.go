package table

// Categories is an ordered set of labels. The position of a label is its
// code. Codes never change once assigned.
type Categories struct {
	labels []string
	index  map[string]int
}

// NewCategories creates a category set from labels, keeping the first
// occurrence of duplicates.
func NewCategories(labels ...string) *Categories {
	res := &Categories{index: make(map[string]int)}
	for _, v := range labels {
		res.Add(v)
	}
	return res
}

// Add appends label if it is not in the set yet and returns its code.
func (c *Categories) Add(label string) int {
	if i, ok := c.index[label]; ok {
		return i
	}
	c.index[label] = len(c.labels)
	c.labels = append(c.labels, label)
	return len(c.labels) - 1
}

// Code returns the code of label and true, or -1 and false if label is not
// in the set.
func (c *Categories) Code(label string) (int, bool) {
	i, ok := c.index[label]
	if !ok {
		return -1, false
	}
	return i, true
}

// Has returns true if label is in the set.
func (c *Categories) Has(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Label returns the label with the given code.
func (c *Categories) Label(code int) string {
	return c.labels[code]
}

// Labels returns a copy of the labels in code order.
func (c *Categories) Labels() []string {
	res := make([]string, len(c.labels))
	copy(res, c.labels)
	return res
}

// Len returns the number of labels.
func (c *Categories) Len() int {
	return len(c.labels)
}

// Filter returns a new set with the labels for which keep returns true,
// in the original order.
func (c *Categories) Filter(keep func(string) bool) *Categories {
	res := NewCategories()
	for _, v := range c.labels {
		if keep(v) {
			res.Add(v)
		}
	}
	return res
}
