package tour

import (
	"context"
	"fmt"
	"io"

	"langtour/internal/calc"
)

// runBasics demonstrates variables, basic types, multiple assignment, and
// fixed-size arrays.
func runBasics(_ context.Context, w io.Writer) error {
	anInteger := 42
	aFloat := 3.14
	fmt.Fprintf(w, "Integer: %d, Float: %g\n", anInteger, aFloat)

	aFloat = 2.71
	fmt.Fprintf(w, "Reassigned float: %g\n", aFloat)

	isActive := true
	aRune := '🚀'
	fmt.Fprintf(w, "Bool: %v, Rune: %c\n", isActive, aRune)

	// Multiple assignment stands in for tuple destructuring.
	x, y := 500, 6.4
	fmt.Fprintf(w, "Pair elements: x=%d, y=%g\n", x, y)

	array := [3]int{1, 2, 3}
	fmt.Fprintf(w, "First array element: %d (len %d)\n", array[0], len(array))
	return nil
}

// runFlow demonstrates branching and the loop forms.
func runFlow(_ context.Context, w io.Writer) error {
	describeDivisibility(w, 7)

	// A small closure stands in for a conditional expression.
	value := func() int {
		if true {
			return 5
		}
		return 6
	}()
	fmt.Fprintf(w, "The value from the conditional is: %d\n", value)

	// Bare for with break, returning a value through a variable.
	counter := 0
	var result int
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}
	fmt.Fprintf(w, "Loop result: %d\n", result)

	// Condition-only for.
	for number := 3; number != 0; number-- {
		fmt.Fprintf(w, "%d!\n", number)
	}
	fmt.Fprintln(w, "Countdown finished!")

	// Range over an int and over a slice.
	for i := 1; i < 4; i++ {
		fmt.Fprintf(w, "For loop (1..4): %d\n", i)
	}
	for _, element := range []int{10, 20, 30, 40, 50} {
		fmt.Fprintf(w, "Slice element: %d\n", element)
	}
	return nil
}

func describeDivisibility(w io.Writer, number int) {
	switch {
	case number%4 == 0:
		fmt.Fprintf(w, "%d is divisible by 4\n", number)
	case number%3 == 0:
		fmt.Fprintf(w, "%d is divisible by 3\n", number)
	case number%2 == 0:
		fmt.Fprintf(w, "%d is divisible by 2\n", number)
	default:
		fmt.Fprintf(w, "%d is not divisible by 4, 3, or 2\n", number)
	}
}

// runFunctions demonstrates plain and recursive functions.
func runFunctions(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "Sum from function: %d\n", calc.Add(10, 5))
	fmt.Fprintf(w, "Factorial of 5 (recursive): %d\n", calc.Factorial(5))
	return nil
}
