package multiway_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/lanrat/pmsort/multiway"
)

func intLess(a, b int) bool {
	return a < b
}

func makeRuns(r *rand.Rand, count, maxLen, keySpace int) ([][]int, []int) {
	runs := make([][]int, count)
	var all []int
	for i := range runs {
		run := make([]int, r.Intn(maxLen+1))
		for j := range run {
			run[j] = r.Intn(keySpace)
		}
		slices.Sort(run)
		runs[i] = run
		all = append(all, run...)
	}
	slices.Sort(all)
	return runs, all
}

func TestMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for _, count := range []int{0, 1, 2, 3, 8, 16} {
		for trial := 0; trial < 10; trial++ {
			runs, want := makeRuns(r, count, 50, 30)
			dst := make([]int, len(want))
			multiway.Merge(runs, dst, intLess, false)
			if !slices.Equal(dst, want) {
				t.Fatalf("count=%d trial=%d: merge output differs from reference", count, trial)
			}
		}
	}
}

func TestMergeWithEmptyRuns(t *testing.T) {
	runs := [][]int{{}, {1, 4}, {}, {2, 3}, {}}
	dst := make([]int, 4)
	multiway.Merge(runs, dst, intLess, false)
	if !slices.Equal(dst, []int{1, 2, 3, 4}) {
		t.Fatalf("got %v", dst)
	}
}

func TestMergeSingleRun(t *testing.T) {
	dst := make([]int, 3)
	multiway.Merge([][]int{{1, 2, 3}}, dst, intLess, true)
	if !slices.Equal(dst, []int{1, 2, 3}) {
		t.Fatalf("got %v", dst)
	}
}

// tagged pairs a key with the run it came from
type tagged struct {
	Key, Run int
}

func TestMergeStableTieBreak(t *testing.T) {
	less := func(a, b tagged) bool { return a.Key < b.Key }
	runs := [][]tagged{
		{{1, 0}, {2, 0}, {2, 0}},
		{{1, 1}, {1, 1}, {3, 1}},
		{{2, 2}, {3, 2}},
	}
	dst := make([]tagged, 8)
	multiway.Merge(runs, dst, less, true)

	for i := 1; i < len(dst); i++ {
		if dst[i].Key < dst[i-1].Key {
			t.Fatalf("not sorted at %d: %v", i, dst)
		}
		if dst[i].Key == dst[i-1].Key && dst[i].Run < dst[i-1].Run {
			t.Fatalf("equal keys out of run order at %d: %v", i, dst)
		}
	}
}
