// Package feed models summarizable content items behind a single interface,
// demonstrating interface satisfaction with and without a shared default.
package feed

import (
	"fmt"
	"io"
)

// Summarizer is anything that can describe itself in one line.
type Summarizer interface {
	// SummarizeAuthor returns the item's author handle.
	SummarizeAuthor() string

	// Summarize returns a one-line summary of the item.
	Summarize() string
}

// DefaultSummary is the shared fallback summary. Implementations that have
// no richer text delegate their Summarize to it.
func DefaultSummary(s Summarizer) string {
	return fmt.Sprintf("(Read more from %s...)", s.SummarizeAuthor())
}

// Tweet is a short post with its own summary format.
type Tweet struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

// SummarizeAuthor returns the @-prefixed username.
func (t Tweet) SummarizeAuthor() string {
	return "@" + t.Username
}

// Summarize returns "author: content", overriding the default summary.
func (t Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.SummarizeAuthor(), t.Content)
}

// NewsArticle is a long-form item that relies on the default summary.
type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

// SummarizeAuthor returns the @-prefixed author name.
func (a NewsArticle) SummarizeAuthor() string {
	return "@" + a.Author
}

// Summarize delegates to DefaultSummary.
func (a NewsArticle) Summarize() string {
	return DefaultSummary(a)
}

// Notify writes a breaking-news line for any Summarizer to w.
func Notify(w io.Writer, s Summarizer) error {
	_, err := fmt.Fprintf(w, "Breaking news! %s\n", s.Summarize())
	return err
}
