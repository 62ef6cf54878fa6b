package pmsort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/lanrat/pmsort"
)

func TestSortOrderedStrings(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	words := make([]string, 3000)
	for i := range words {
		b := make([]byte, 1+r.Intn(12))
		for j := range b {
			b[j] = byte('a' + r.Intn(26))
		}
		words[i] = string(b)
	}
	want := slices.Clone(words)
	slices.Sort(want)

	if err := pmsort.SortOrdered(words, &pmsort.Config{Threads: 4}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, want) {
		t.Fatal("strings not sorted")
	}
}

func TestSortOrderedStableFloats(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]float64, 2000)
	for i := range data {
		data[i] = float64(r.Intn(100))
	}
	want := slices.Clone(data)
	slices.Sort(want)

	cfg := &pmsort.Config{Threads: 3, Splitter: pmsort.SplitterExact}
	if err := pmsort.SortOrderedStable(data, cfg); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, want) {
		t.Fatal("floats not sorted")
	}
}

func TestSortOrderedDefaults(t *testing.T) {
	data := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	if err := pmsort.SortOrdered(data, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.IsSorted(data) {
		t.Fatalf("got %v", data)
	}
}

func benchmarkSort(b *testing.B, cfg *pmsort.Config) {
	const size = 1 << 20
	r := rand.New(rand.NewSource(99))
	input := make([]int, size)
	for i := range input {
		input[i] = r.Int()
	}
	scratch := make([]int, size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(scratch, input)
		if err := pmsort.SortOrdered(scratch, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSortSampling(b *testing.B) {
	benchmarkSort(b, &pmsort.Config{Splitter: pmsort.SplitterSampling})
}

func BenchmarkSortExact(b *testing.B) {
	benchmarkSort(b, &pmsort.Config{Splitter: pmsort.SplitterExact})
}

func BenchmarkSortInPlaceStorage(b *testing.B) {
	benchmarkSort(b, &pmsort.Config{Storage: pmsort.StorageInPlace})
}

func BenchmarkSortSingleThread(b *testing.B) {
	benchmarkSort(b, &pmsort.Config{Threads: 1})
}
