// Package seq provides generic helpers over ordered sequences.
//
// All functions operate on caller-owned slices: nothing is copied, mutated,
// or retained. Position results are returned as indexes into the input so
// the caller decides whether to copy the element.
package seq

import "cmp"

// Largest returns the index of the maximum element of list under the
// natural ordering of T. The scan is a single left-to-right pass using
// strict greater-than, so when the maximum occurs more than once the index
// of the first occurrence is returned.
//
// The input must be non-empty. An empty slice is a caller contract breach
// and panics rather than returning a recoverable error.
func Largest[T cmp.Ordered](list []T) int {
	if len(list) == 0 {
		panic("seq: cannot find largest in empty list")
	}
	largest := 0
	for i := 1; i < len(list); i++ {
		if list[i] > list[largest] {
			largest = i
		}
	}
	return largest
}

// LargestFunc is Largest under a caller-supplied strict ordering.
// less must report whether a orders before b. Ties keep the earliest index.
//
// Panics on an empty list, same as Largest.
func LargestFunc[T any](list []T, less func(a, b T) bool) int {
	if len(list) == 0 {
		panic("seq: cannot find largest in empty list")
	}
	largest := 0
	for i := 1; i < len(list); i++ {
		if less(list[largest], list[i]) {
			largest = i
		}
	}
	return largest
}

// Find returns the index of the first element equal to needle,
// and whether any element matched.
func Find[T comparable](list []T, needle T) (int, bool) {
	for i, item := range list {
		if item == needle {
			return i, true
		}
	}
	return 0, false
}

// Map applies fn to every element and returns the results.
// A nil or empty input yields an empty non-nil slice.
func Map[T, U any](list []T, fn func(T) U) []U {
	out := make([]U, 0, len(list))
	for _, item := range list {
		out = append(out, fn(item))
	}
	return out
}
