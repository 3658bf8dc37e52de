// Package textutil provides small string helpers used by the tour sections.
package textutil

// Longest returns the longer of two strings, measured in bytes.
// On equal lengths the second argument is returned.
func Longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

// Excerpt returns the first n runes of s. Unlike a byte slice, this never
// splits a multi-byte character. If s has n runes or fewer it is returned
// unchanged.
func Excerpt(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
