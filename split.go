package pmsort

import "sort"

// equallySplit returns parts+1 boundary offsets dividing length items into
// parts contiguous chunks. Chunk i has length/parts items, plus one extra
// for each of the first length%parts chunks. Boundaries are non-decreasing,
// the first is 0 and the last is length. The same split rule positions the
// sampling splitter's sample ranks within a chunk.
func equallySplit(length, parts int) []int {
	bounds := make([]int, parts+1)
	chunk, rem := length/parts, length%parts
	offset := 0
	for i := 0; i < parts; i++ {
		bounds[i] = offset
		offset += chunk
		if i < rem {
			offset++
		}
	}
	bounds[parts] = length
	return bounds
}

// lowerBound returns the first index in the sorted slice whose element is
// not less than target, or len(sorted) if no such element exists.
func lowerBound[E any](sorted []E, target E, less Less[E]) int {
	return sort.Search(len(sorted), func(i int) bool { return !less(sorted[i], target) })
}
