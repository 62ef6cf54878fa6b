package multiway

import "sort"

// Select returns one offset per sequence such that the offsets sum to rank
// and the offsets form a valid global split: no element left of any offset
// orders after an element at or right of any offset. Every sequence in seqs
// must be sorted by less, and rank must be in [0, total length].
//
// Elements equal to the boundary value are consumed in ascending sequence
// order, so prefixes taken in sequence order followed by suffixes in
// sequence order reproduce a stable global order.
func Select[E any](seqs [][]E, rank int, less Less[E]) []int {
	offsets := make([]int, len(seqs))
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	if rank <= 0 {
		return offsets
	}
	if rank >= total {
		for i, s := range seqs {
			offsets[i] = len(s)
		}
		return offsets
	}

	// Binary search with a pivot drawn from the widest remaining candidate
	// range. Narrowing never discards a position holding the boundary value
	// (the element at global rank-1): positions above the pivot are cut only
	// when the pivot already outranks rank, positions below only when even
	// its equals cannot reach rank. So the equality case below is always hit.
	lo := make([]int, len(seqs))
	hi := make([]int, len(seqs))
	for i, s := range seqs {
		hi[i] = len(s)
	}

	for {
		widest, width := 0, 0
		for i := range seqs {
			if hi[i]-lo[i] > width {
				widest, width = i, hi[i]-lo[i]
			}
		}
		mid := lo[widest] + width/2
		pivot := seqs[widest][mid]

		below, upTo := 0, 0
		for _, s := range seqs {
			below += lowerBound(s, pivot, less)
			upTo += upperBound(s, pivot, less)
		}

		switch {
		case below > rank:
			hi[widest] = mid
		case upTo < rank:
			lo[widest] = mid + 1
		default:
			// pivot is the boundary value: take everything ordered before
			// it, then fill the remainder from its equals in sequence order
			remaining := rank - below
			for i, s := range seqs {
				l := lowerBound(s, pivot, less)
				offsets[i] = l
				if remaining > 0 {
					eq := upperBound(s, pivot, less) - l
					if eq > remaining {
						eq = remaining
					}
					offsets[i] = l + eq
					remaining -= eq
				}
			}
			return offsets
		}
	}
}

// lowerBound returns the first index in the sorted slice whose element is
// not less than v.
func lowerBound[E any](sorted []E, v E, less Less[E]) int {
	return sort.Search(len(sorted), func(i int) bool { return !less(sorted[i], v) })
}

// upperBound returns the first index in the sorted slice whose element is
// greater than v.
func upperBound[E any](sorted []E, v E, less Less[E]) int {
	return sort.Search(len(sorted), func(i int) bool { return less(v, sorted[i]) })
}
