// Package tour defines runnable demonstration sections and the engine that
// registers, selects, and executes them against an output stream.
package tour

import (
	"context"
	"fmt"
	"io"
)

// Topic groups related sections for listing.
type Topic string

const (
	// TopicSyntax covers variables, control flow, and functions.
	TopicSyntax Topic = "syntax"

	// TopicData covers collections, strings, structs, and generics.
	TopicData Topic = "data"

	// TopicBehavior covers interfaces, variants, closures, and errors.
	TopicBehavior Topic = "behavior"

	// TopicConcurrency covers goroutine demonstrations.
	TopicConcurrency Topic = "concurrency"
)

// RunFunc is the signature of a section body. It writes its demonstration
// output to w and returns the first write or execution error.
type RunFunc func(ctx context.Context, w io.Writer) error

// Section is a self-contained demonstration.
type Section struct {
	// Name is the unique identifier used on the command line.
	Name string

	// Title is the human-readable heading printed above the output.
	Title string

	// Topic groups the section in listings.
	Topic Topic

	// Run produces the section's output.
	Run RunFunc
}

// Validate checks that the section is well-formed.
func (s *Section) Validate() error {
	if s.Name == "" {
		return ErrSectionNameEmpty
	}
	if s.Run == nil {
		return fmt.Errorf("%w: %s", ErrSectionRunNil, s.Name)
	}
	return nil
}
