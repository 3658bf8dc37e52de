package tour

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"langtour/internal/config"
)

// concurrencySection builds the spawn-and-join demonstration. One goroutine
// prints its greetings while the calling goroutine prints its own; the
// spawned goroutine is always joined before the section returns.
func concurrencySection(cfg config.ConcurrencyConfig) RunFunc {
	return func(ctx context.Context, w io.Writer) error {
		delay := cfg.DelayDuration()

		// Interleaved writers share the output stream.
		var mu sync.Mutex
		say := func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(w, format, args...)
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			for i := 1; i <= cfg.SpawnedGreetings; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				say("Hi number %d from the spawned goroutine!\n", i)
				time.Sleep(delay)
			}
			return nil
		})

		for i := 1; i <= cfg.MainGreetings; i++ {
			say("Hi number %d from the main goroutine!\n", i)
			time.Sleep(delay)
		}

		if err := g.Wait(); err != nil {
			return err
		}
		say("Spawned goroutine finished.\n")
		return nil
	}
}
