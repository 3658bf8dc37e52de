package tour

import (
	"context"
	"fmt"
	"io"

	"langtour/internal/calc"
	"langtour/internal/feed"
	"langtour/internal/seq"
	"langtour/internal/signal"
)

// runErrors demonstrates absent-value lookups, guarded division, and
// short-circuit error propagation.
func runErrors(_ context.Context, w io.Writer) error {
	numbers := []int{1, 2, 3, 4, 5}
	if idx, ok := seq.Find(numbers, 3); ok {
		fmt.Fprintf(w, "Found 3 at index: %d\n", idx)
	} else {
		fmt.Fprintln(w, "3 not found in the list.")
	}
	if idx, ok := seq.Find(numbers, 6); ok {
		fmt.Fprintf(w, "Found 6 at index: %d\n", idx)
	} else {
		fmt.Fprintln(w, "6 not found in the list.")
	}

	if result, err := calc.Divide(10.0, 2.0); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	} else {
		fmt.Fprintf(w, "10.0 / 2.0 = %g\n", result)
	}
	if result, err := calc.Divide(10.0, 0.0); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	} else {
		fmt.Fprintf(w, "10.0 / 0.0 = %g\n", result)
	}

	p := calc.NewProcessor(nil)
	if res, err := p.ProcessDivision(20.0, 5.0); err != nil {
		fmt.Fprintf(w, "Processing error: %v\n", err)
	} else {
		fmt.Fprintf(w, "Processed division result: %g\n", res)
	}
	if res, err := p.ProcessDivision(20.0, 0.0); err != nil {
		fmt.Fprintf(w, "Processing error: %v\n", err)
	} else {
		fmt.Fprintf(w, "Processed division result: %g\n", res)
	}
	return nil
}

// runInterfaces demonstrates interface satisfaction and the shared default
// summary.
func runInterfaces(_ context.Context, w io.Writer) error {
	tweet := feed.Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know",
	}
	article := feed.NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
		Content:  "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
	}

	fmt.Fprintf(w, "Tweet summary: %s\n", tweet.Summarize())
	fmt.Fprintf(w, "Article summary: %s\n", article.Summarize())

	if err := feed.Notify(w, tweet); err != nil {
		return err
	}
	return feed.Notify(w, article)
}

// runSignals demonstrates dispatch over a closed variant set.
func runSignals(_ context.Context, w io.Writer) error {
	messages := []signal.Message{
		signal.Write{Text: "Hello from enum!"},
		signal.ChangeColor{R: 10, G: 20, B: 30},
		signal.Quit{},
		signal.Move{X: 50, Y: -10},
	}
	for _, msg := range messages {
		fmt.Fprintln(w, signal.Describe(msg))
	}
	return nil
}

// runClosures demonstrates closures and capture.
func runClosures(_ context.Context, w io.Writer) error {
	doubler := func(x int) int { return x * 2 }
	fmt.Fprintf(w, "Doubler closure: 5 * 2 = %d\n", doubler(5))

	factor := 10
	multiplier := func(x int) int { return x * factor }
	fmt.Fprintf(w, "Multiplier closure: 6 * %d = %d\n", factor, multiplier(6))

	numbers := []int{1, 2, 3, 4, 5}
	doubled := seq.Map(numbers, func(x int) int { return x * 2 })
	fmt.Fprintf(w, "Doubled numbers using Map and a closure: %v\n", doubled)
	return nil
}
