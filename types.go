package pmsort

// Less is the comparator used by all sorts in this package. It must define
// a strict weak ordering over E: irreflexive, transitive, and with
// transitive incomparability. It must be safe to call concurrently on
// disjoint data and should signal failure only by panicking, in which case
// the whole sort call aborts with a ComparisonError.
type Less[E any] func(a, b E) bool
