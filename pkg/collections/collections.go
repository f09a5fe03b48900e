package collections

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}
	return result
}

// Indices returns 0, 1, ..., n-1. It returns an empty slice for n <= 0.
func Indices(n int) []int {
	if n <= 0 {
		return []int{}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
