package pmsort

import "runtime"

// SplitterStrategy selects how the merge work is divided between workers.
type SplitterStrategy int

const (
	// SplitterSampling splits chunks at pivots drawn from a sorted sample
	// set. Cheap, with approximately balanced merge work.
	SplitterSampling SplitterStrategy = iota
	// SplitterExact splits chunks at exact global ranks, so every worker
	// merges exactly its chunk's length worth of elements. Balanced, at a
	// higher per-call cost than sampling.
	SplitterExact
)

// StorageStrategy selects where local sorting and merging happen.
type StorageStrategy int

const (
	// StorageOutOfPlace copies every chunk into a worker-owned scratch
	// buffer, sorts it there, and merges straight back into the input.
	StorageOutOfPlace StorageStrategy = iota
	// StorageInPlace sorts chunks inside the input, merges into scratch
	// buffers, and copies the merged runs back.
	StorageInPlace
)

// Config holds configuration settings for pmsort
type Config struct {
	Threads      int              // number of worker goroutines, reduced to len(data) for short inputs
	Oversampling int              // samples drawn per worker relative to worker count (sampling splitter only)
	Splitter     SplitterStrategy // how piece boundaries are computed
	Storage      StorageStrategy  // where sorting and merging happen
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Threads:      runtime.GOMAXPROCS(0),
		Oversampling: 10,
		Splitter:     SplitterSampling,
		Storage:      StorageOutOfPlace,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Threads < 1 {
		out.Threads = d.Threads
	}
	if out.Oversampling < 1 {
		out.Oversampling = d.Oversampling
	}
	return &out
}

// validate rejects strategy values outside the declared constants
func (c *Config) validate() error {
	if c.Splitter != SplitterSampling && c.Splitter != SplitterExact {
		return &ConfigError{Field: "Splitter", Value: c.Splitter, Reason: "unknown splitter strategy"}
	}
	if c.Storage != StorageOutOfPlace && c.Storage != StorageInPlace {
		return &ConfigError{Field: "Storage", Value: c.Storage, Reason: "unknown storage strategy"}
	}
	return nil
}
