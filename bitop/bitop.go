// Package bitop provides small bit-test helpers.
package bitop

// Integer matches the built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsPowerOfTwo reports whether i is an exact power of two. Zero and
// negative values are not powers of two.
func IsPowerOfTwo[T Integer](i T) bool {
	return i > 0 && i&(i-1) == 0
}
