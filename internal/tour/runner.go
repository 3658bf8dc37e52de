package tour

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"langtour/internal/logging"
)

// HeaderFunc renders a section title into the heading line printed above
// the section's output.
type HeaderFunc func(title string) string

// PlainHeader is the default heading style.
func PlainHeader(title string) string {
	return fmt.Sprintf("--- %s ---", title)
}

// Runner executes sections sequentially against a single writer.
type Runner struct {
	reg    *Registry
	log    *zap.Logger
	header HeaderFunc
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithHeader sets a custom heading renderer.
func WithHeader(h HeaderFunc) RunnerOption {
	return func(r *Runner) {
		r.header = h
	}
}

// NewRunner creates a Runner over the given registry.
// A nil logger is replaced with zap.NewNop.
func NewRunner(reg *Registry, log *zap.Logger, opts ...RunnerOption) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		reg:    reg,
		log:    log,
		header: PlainHeader,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the named sections in order, writing their output to w.
// An empty names list runs every registered section in registration order.
// The first failure stops the run and is returned wrapped with the section
// name; context cancellation is checked between sections.
func (r *Runner) Run(ctx context.Context, w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = r.reg.Names()
	}

	runID := uuid.NewString()
	start := time.Now()
	r.log.Debug("starting tour run",
		zap.String("run_id", runID),
		zap.Int("sections", len(names)))
	logging.Runner("run %s: %d section(s)", runID, len(names))

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run canceled before section %s: %w", name, err)
		}

		s, err := r.reg.Get(name)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.header(s.Title))

		sectionStart := time.Now()
		if err := s.Run(ctx, w); err != nil {
			r.log.Error("section failed",
				zap.String("run_id", runID),
				zap.String("section", name),
				zap.Error(err))
			return fmt.Errorf("section %s: %w", name, err)
		}
		logging.RunnerDebug("run %s: section %s done in %v", runID, name, time.Since(sectionStart))
	}

	r.log.Debug("tour run complete",
		zap.String("run_id", runID),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
