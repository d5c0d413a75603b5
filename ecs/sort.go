package ecs

// sortBy reorders the column in place so cmp holds pairwise over the dense
// buffer. Every element move goes through swapSlots, keeping the entity maps
// consistent at every step; no scratch buffer is allocated. The sort is
// unstable. Columns already flagged sorted, or holding fewer than two
// elements, are left untouched.
func (c *Column[T]) sortBy(cmp func(a, b T) bool) {
	if c.sorted || len(c.data) < 2 {
		return
	}
	c.quicksort(0, len(c.data)-1, cmp)
	c.sorted = true
}

// quicksort is a Lomuto-partition quicksort with the last element of the
// range as pivot.
func (c *Column[T]) quicksort(low, high int, cmp func(a, b T) bool) {
	if low >= high {
		return
	}
	p := c.partition(low, high, cmp)
	c.quicksort(low, p-1, cmp)
	c.quicksort(p+1, high, cmp)
}

func (c *Column[T]) partition(low, high int, cmp func(a, b T) bool) int {
	pivot := c.data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(c.data[j], pivot) {
			i++
			c.swapSlots(i, j)
		}
	}
	c.swapSlots(i+1, high)
	return i + 1
}
