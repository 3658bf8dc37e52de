package tour

import (
	"context"
	"fmt"
	"io"
	"sort"

	"langtour/internal/geometry"
	"langtour/internal/seq"
	"langtour/internal/textutil"
)

// runCollections demonstrates slices and maps.
func runCollections(_ context.Context, w io.Writer) error {
	var myVec []int
	myVec = append(myVec, 10, 20, 30)
	fmt.Fprintf(w, "Slice: %v\n", myVec)
	if len(myVec) > 2 {
		fmt.Fprintf(w, "Third element: %d\n", myVec[2])
	}

	for _, i := range []int{100, 200, 300} {
		fmt.Fprintf(w, "Slice item: %d\n", i)
	}

	scores := map[string]int{
		"Blue":   10,
		"Yellow": 50,
	}
	if s, ok := scores["Blue"]; ok {
		fmt.Fprintf(w, "Score for Blue team: %d\n", s)
	}

	// Map iteration order is randomized; sort keys for stable output.
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %d\n", k, scores[k])
	}
	return nil
}

// runStrings demonstrates string building, formatting, and rune-safe slicing.
func runStrings(_ context.Context, w io.Writer) error {
	s1 := "Hello"
	s2 := "World"
	s2 += "! "
	fmt.Fprintf(w, "Literal: %s, Built string: %s\n", s1, s2)

	s3 := s1 + " " + s2
	fmt.Fprintf(w, "Concatenated: %s\n", s3)

	s4 := fmt.Sprintf("%s-%s", s1, s2)
	fmt.Fprintf(w, "Formatted: %s\n", s4)

	fmt.Fprintf(w, "Excerpt of s4: %s\n", textutil.Excerpt(s4, 5))
	fmt.Fprintf(w, "Longest of %q and %q: %q\n", "abcd", "xy", textutil.Longest("abcd", "xy"))
	return nil
}

// runStructs demonstrates struct types, methods, and Stringer.
func runStructs(_ context.Context, w io.Writer) error {
	type user struct {
		username    string
		email       string
		signInCount uint64
		active      bool
	}
	user1 := user{
		username:    "john_doe",
		email:       "john@example.com",
		signInCount: 1,
		active:      true,
	}
	fmt.Fprintf(w, "User: %s, Email: %s\n", user1.username, user1.email)
	user1.email = "john.doe@newdomain.com"
	fmt.Fprintf(w, "User sign-ins: %d, Active: %v\n", user1.signInCount, user1.active)

	rect := geometry.Rect{Width: 30, Height: 50}
	fmt.Fprintf(w, "Rectangle area: %d\n", rect.Area())
	fmt.Fprintf(w, "Can rect hold another? %v\n", rect.CanHold(geometry.Rect{Width: 10, Height: 40}))

	square := geometry.Square(25)
	fmt.Fprintf(w, "Square area: %d\n", square.Area())
	fmt.Fprintf(w, "Rectangle Stringer: %s\n", rect)
	return nil
}

// runGenerics demonstrates the generic largest scan and a generic struct.
func runGenerics(_ context.Context, w io.Writer) error {
	numberList := []int{34, 50, 25, 100, 65}
	fmt.Fprintf(w, "Largest number: %d\n", numberList[seq.Largest(numberList)])

	charList := []rune{'y', 'm', 'c', 'a'}
	fmt.Fprintf(w, "Largest char: %c\n", charList[seq.Largest(charList)])

	p1 := geometry.NewPoint(5, 10)
	p2 := geometry.NewPoint(1.0, 4.0)
	fmt.Fprintf(w, "Generic Point: x = %d, y = %d\n", p1.X(), p1.Y())
	fmt.Fprintf(w, "Generic Point: x = %g, y = %g\n", p2.X(), p2.Y())
	return nil
}
