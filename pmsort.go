// Package pmsort implements a parallel multiway mergesort that sorts slices
// in place using a fixed set of worker goroutines.
//
// A sort call partitions the slice into one chunk per worker, sorts the
// chunks independently, splits every chunk into per-worker pieces (by
// sampling or by exact rank selection), and multiway-merges each worker's
// pieces into its region of the output. All workers are joined before the
// call returns; no state survives between calls.
package pmsort

import "cmp"

// Sort sorts data in place using less. The relative order of equal elements
// is unspecified. config can be nil to use the defaults, or set only the
// non-default values desired.
func Sort[E any](data []E, less Less[E], config *Config) error {
	return sortSlice(data, less, false, config)
}

// SortStable sorts data in place using less, preserving the input order of
// equal elements.
func SortStable[E any](data []E, less Less[E], config *Config) error {
	return sortSlice(data, less, true, config)
}

// SortOrdered sorts a slice of any ordered type in ascending order using
// the < operator, like Sort.
func SortOrdered[E cmp.Ordered](data []E, config *Config) error {
	return Sort(data, cmp.Less[E], config)
}

// SortOrderedStable is the stable variant of SortOrdered.
func SortOrderedStable[E cmp.Ordered](data []E, config *Config) error {
	return SortStable(data, cmp.Less[E], config)
}

func sortSlice[E any](data []E, less Less[E], stable bool, config *Config) error {
	// nothing to do, and no workers are launched
	if len(data) <= 1 {
		return nil
	}
	cfg := mergeConfig(config)
	if err := cfg.validate(); err != nil {
		return err
	}
	j := newJob(data, less, stable, cfg)
	return j.sort()
}
