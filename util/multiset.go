package util

// MultiSet counts occurrences of comparable elements.
type MultiSet[T comparable] map[T]int

func NewMultiSet[T comparable](elems ...T) MultiSet[T] {
	m := make(MultiSet[T])
	for _, e := range elems {
		m.Add(e)
	}
	return m
}

func (m MultiSet[T]) Add(elem T) {
	m[elem]++
}

// Size returns the total number of elements, counting multiplicities.
func (m MultiSet[T]) Size() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// Eq reports whether both multisets hold the same elements with the same
// multiplicities.
func (m MultiSet[T]) Eq(other MultiSet[T]) bool {
	if len(m) != len(other) {
		return false
	}
	for elem, count := range m {
		if other[elem] != count {
			return false
		}
	}
	return true
}
