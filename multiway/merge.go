// Package multiway provides the primitives behind the parallel mergesort:
// merging K sorted runs into one output and finding exact global-rank
// splits across K sorted sequences.
package multiway

import "github.com/lanrat/pmsort/queue"

// Less reports whether a orders before b. It must define a strict weak
// ordering, like pmsort.Less.
type Less[E any] func(a, b E) bool

// run tracks one sorted input of a merge and its position in the input order
type run[E any] struct {
	seq  []E
	next int // index of the run's head element
	idx  int // index of the run in the Merge call
}

// Merge merges the sorted runs into dst, whose length must equal the total
// length of all runs. When stable is true, equal elements are emitted in
// ascending run order, so runs listed in input order merge stably;
// otherwise the order of equal elements from different runs is unspecified.
// Runs may be empty. Merge runs in a single goroutine; callers parallelize
// by merging disjoint runs into disjoint destinations.
func Merge[E any](runs [][]E, dst []E, less Less[E], stable bool) {
	switch len(runs) {
	case 0:
		return
	case 1:
		copy(dst, runs[0])
		return
	}

	headLess := func(a, b *run[E]) bool {
		if less(a.seq[a.next], b.seq[b.next]) {
			return true
		}
		if stable && !less(b.seq[b.next], a.seq[a.next]) {
			return a.idx < b.idx
		}
		return false
	}

	pq := queue.New(headLess)
	for i, seq := range runs {
		if len(seq) > 0 {
			pq.Push(&run[E]{seq: seq, idx: i})
		}
	}

	out := 0
	for pq.Len() > 0 {
		r := pq.Peek()
		dst[out] = r.seq[r.next]
		out++
		r.next++
		if r.next < len(r.seq) {
			pq.Fix()
		} else {
			pq.Pop()
		}
	}
}
