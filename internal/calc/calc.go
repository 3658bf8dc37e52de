// Package calc provides guarded arithmetic with explicit failure values.
package calc

import "errors"

// ErrDivideByZero is returned by Divide when the denominator is exactly zero.
// Composing operations propagate this value untouched, so callers can test
// with errors.Is or direct equality.
var ErrDivideByZero = errors.New("Cannot divide by zero!")

// Divide computes numerator / denominator.
// A denominator of exactly 0.0 fails with ErrDivideByZero; there is no
// epsilon tolerance. Otherwise the quotient follows host float64 semantics.
func Divide(numerator, denominator float64) (float64, error) {
	if denominator == 0.0 {
		return 0, ErrDivideByZero
	}
	return numerator / denominator, nil
}

// Add returns the sum of two integers.
func Add(x, y int) int {
	return x + y
}

// Factorial computes n! recursively.
func Factorial(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return n * Factorial(n-1)
}
