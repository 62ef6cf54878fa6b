package pmsort

import (
	"slices"

	"github.com/lanrat/pmsort/multiway"
)

// splitter computes one worker's row of the piece table: for every sorted
// chunk, the subrange that worker must merge. Implementations synchronize
// through the job barrier and must use the same number of awaits on every
// worker. Both implementations guarantee that, for each chunk, the pieces
// of all workers ordered by worker index partition the chunk exactly.
type splitter[E any] interface {
	assign(j *job[E], id int) error
}

// samplingSplitter splits chunks at pivots taken from a globally sorted
// sample set. Piece sizes are only approximately balanced, but every
// element lands in exactly one piece.
type samplingSplitter[E any] struct {
	numSamples int // samples drawn per worker
}

func (sp *samplingSplitter[E]) assign(j *job[E], id int) error {
	m := sp.numSamples
	sorted := j.sortingPlaces[id]

	// equally spaced ranks over the worker's own sorted chunk
	ranks := equallySplit(len(sorted), m+1)
	for i := 0; i < m; i++ {
		r := ranks[i+1]
		if r >= len(sorted) {
			// chunk shorter than the sample grid
			r = len(sorted) - 1
		}
		j.samples[id*m+i] = sorted[r]
	}

	if err := j.bar.await(); err != nil {
		return err
	}

	// exactly one worker sorts the shared sample set
	if id == 0 {
		slices.SortFunc(j.samples, j.compare)
	}

	if err := j.bar.await(); err != nil {
		return err
	}

	for s := 0; s < j.threads; s++ {
		chunk := j.sortingPlaces[s]
		var p piece
		if id > 0 {
			p.begin = lowerBound(chunk, j.samples[m*id], j.less)
		}
		if id < j.threads-1 {
			p.end = lowerBound(chunk, j.samples[m*(id+1)], j.less)
		} else {
			// absolute end
			p.end = len(chunk)
		}
		j.pieces[id][s] = p
	}
	return nil
}

// exactSplitter splits chunks at exact global ranks via multiway.Select, so
// each worker merges exactly its chunk's length worth of elements.
type exactSplitter[E any] struct{}

func (exactSplitter[E]) assign(j *job[E], id int) error {
	// all sorting places must be visible before rank selection reads them
	if err := j.bar.await(); err != nil {
		return err
	}

	if id < j.threads-1 {
		offsets := multiway.Select(j.sortingPlaces, j.starts[id+1], multiway.Less[E](j.less))
		for s := 0; s < j.threads; s++ {
			j.pieces[id][s].end = offsets[s]
		}
	} else {
		for s := 0; s < j.threads; s++ {
			// absolute end of every chunk
			j.pieces[id][s].end = len(j.sortingPlaces[s])
		}
	}

	// ends must be complete before begins are copied from the predecessor
	if err := j.bar.await(); err != nil {
		return err
	}

	if id > 0 {
		for s := 0; s < j.threads; s++ {
			j.pieces[id][s].begin = j.pieces[id-1][s].end
		}
	}
	return nil
}
