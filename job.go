package pmsort

import (
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lanrat/pmsort/multiway"
)

// piece describes the subrange of one sorted chunk that one worker merges.
type piece struct {
	begin, end int
}

// job is the state shared by the workers of a single sort call. Each worker
// writes only its own slots of the per-worker slices; a slot is read by
// peers only after a barrier that orders the write before the read. The job
// is discarded when the call returns.
type job[E any] struct {
	data    []E
	less    Less[E]
	stable  bool
	threads int
	storage StorageStrategy

	starts        []int     // chunk boundaries into data, len threads+1
	sortingPlaces [][]E     // authoritative sorted chunk per worker
	mergingPlaces [][]E     // merge destination per worker
	samples       []E       // sampling splitter scratch, one segment per worker
	pieces        [][]piece // [worker][chunk] merge assignments
	split         splitter[E]
	bar           *barrier

	failOnce sync.Once
	failure  error
}

func newJob[E any](data []E, less Less[E], stable bool, cfg *Config) *job[E] {
	threads := cfg.Threads
	// at least one element per worker
	if threads > len(data) {
		threads = len(data)
	}

	j := &job[E]{
		data:          data,
		less:          less,
		stable:        stable,
		threads:       threads,
		storage:       cfg.Storage,
		starts:        equallySplit(len(data), threads),
		sortingPlaces: make([][]E, threads),
		mergingPlaces: make([][]E, threads),
		pieces:        make([][]piece, threads),
		bar:           newBarrier(threads),
	}
	for i := range j.pieces {
		j.pieces[i] = make([]piece, threads)
	}

	switch cfg.Splitter {
	case SplitterExact:
		j.split = exactSplitter[E]{}
	default:
		numSamples := cfg.Oversampling*threads - 1
		j.samples = make([]E, threads*numSamples)
		j.split = &samplingSplitter[E]{numSamples: numSamples}
	}
	return j
}

// sort launches one goroutine per worker and joins them all before
// returning. A worker failure breaks the barrier, so every other worker
// unblocks and returns; the first recorded failure wins.
func (j *job[E]) sort() error {
	var group errgroup.Group
	for i := 0; i < j.threads; i++ {
		id := i
		group.Go(func() error {
			return j.runWorker(id)
		})
	}
	err := group.Wait()
	// Peers read each other's sorting places right up to their own return,
	// abort paths included, so scratch slots are dropped only after the
	// join. The job itself is discarded when the call returns.
	for i := 0; i < j.threads; i++ {
		j.sortingPlaces[i] = nil
		j.mergingPlaces[i] = nil
	}
	if err != nil {
		if j.failure != nil {
			return j.failure
		}
		return err
	}
	return nil
}

// fail records the first worker failure and releases all barrier waiters.
func (j *job[E]) fail(err error) {
	j.failOnce.Do(func() {
		j.failure = err
	})
	j.bar.breakBarrier()
}

func (j *job[E]) runWorker(id int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, "sort worker")
			j.fail(err)
		}
	}()
	return j.work(id)
}

// work runs the full phase sequence for one worker: local sort, piece
// assignment, multiway merge, and copy-back for in-place storage. Every
// worker executes an identical barrier schedule regardless of strategy.
func (j *job[E]) work(id int) error {
	chunk := j.data[j.starts[id]:j.starts[id+1]]

	if j.storage == StorageInPlace {
		// sort inside the input, merge into scratch later
		j.sortingPlaces[id] = chunk
	} else {
		// sort in scratch, merge straight into the input later; the spare
		// capacity slot is reserved for merge algorithms that park a sentinel
		scratch := make([]E, len(chunk), len(chunk)+1)
		copy(scratch, chunk)
		j.sortingPlaces[id] = scratch
	}
	if j.stable {
		slices.SortStableFunc(j.sortingPlaces[id], j.compare)
	} else {
		slices.SortFunc(j.sortingPlaces[id], j.compare)
	}

	if err := j.split.assign(j, id); err != nil {
		return err
	}

	// destination offset is the total input preceding this worker's pieces;
	// destination length is the total size of its pieces
	offset, length := 0, 0
	for s := 0; s < j.threads; s++ {
		p := j.pieces[id][s]
		offset += p.begin
		length += p.end - p.begin
	}

	var dst []E
	if j.storage == StorageInPlace {
		dst = make([]E, length)
	} else {
		dst = j.data[offset : offset+length]
	}
	j.mergingPlaces[id] = dst

	runs := make([][]E, 0, j.threads)
	for s := 0; s < j.threads; s++ {
		p := j.pieces[id][s]
		if p.end > p.begin {
			runs = append(runs, j.sortingPlaces[s][p.begin:p.end])
		}
	}
	multiway.Merge(runs, dst, multiway.Less[E](j.less), j.stable)

	if err := j.bar.await(); err != nil {
		return err
	}

	if j.storage == StorageInPlace {
		copy(j.data[offset:offset+length], dst)
	}
	return nil
}

// compare adapts the call's Less to the three-way form the slices sorts take.
func (j *job[E]) compare(a, b E) int {
	if j.less(a, b) {
		return -1
	}
	if j.less(b, a) {
		return 1
	}
	return 0
}
