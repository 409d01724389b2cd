// Package runner executes challenges: one at a time, all at once with
// bounded concurrency, or repeatedly while an input file changes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/input"
)

// Sentinel errors for challenge execution.
var (
	// ErrPanic indicates a solution panicked; the panic value is wrapped in the message.
	ErrPanic = errors.New("runner: solution panicked")
	// ErrWrongAnswer indicates a result disagrees with the recorded answer.
	ErrWrongAnswer = errors.New("runner: wrong answer")
	// ErrNoAnswer indicates no answer is recorded for a challenge.
	ErrNoAnswer = errors.New("runner: no recorded answer")
)

// Result is the outcome of solving one challenge.
type Result struct {
	ID           challenge.ID
	Part1, Part2 string
	Elapsed1     time.Duration
	Elapsed2     time.Duration
	// Skipped is set by SolveAll when no input file exists.
	Skipped bool
	// Err is set by SolveAll when the challenge failed.
	Err error
}

// Runner solves challenges and logs progress.
type Runner struct {
	log     *slog.Logger
	timeout time.Duration
}

// New returns a Runner. timeout bounds each Solve call; zero disables it.
func New(log *slog.Logger, timeout time.Duration) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log, timeout: timeout}
}

// Solve runs both parts of c on in. Solutions are not cancellable: when ctx
// ends first, Solve returns ctx.Err() and the abandoned part finishes in the
// background.
func (r *Runner) Solve(ctx context.Context, c challenge.Challenge, in string) (Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	res := Result{ID: c.ID}

	var err error
	if res.Part1, res.Elapsed1, err = runPart(ctx, c.Part1, in); err != nil {
		return res, fmt.Errorf("%v part 1: %w", c.ID, err)
	}
	r.log.Debug("solved part", "id", c.ID.String(), "part", 1, "elapsed", res.Elapsed1)

	if res.Part2, res.Elapsed2, err = runPart(ctx, c.Part2, in); err != nil {
		return res, fmt.Errorf("%v part 2: %w", c.ID, err)
	}
	r.log.Debug("solved part", "id", c.ID.String(), "part", 2, "elapsed", res.Elapsed2)

	return res, nil
}

type partResult struct {
	answer string
	err    error
}

func runPart(ctx context.Context, fn challenge.Func, in string) (string, time.Duration, error) {
	start := time.Now()
	done := make(chan partResult, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- partResult{err: fmt.Errorf("%w: %v", ErrPanic, p)}
			}
		}()
		answer, err := fn(in)
		done <- partResult{answer: answer, err: err}
	}()

	select {
	case pr := <-done:
		return pr.answer, time.Since(start), pr.err
	case <-ctx.Done():
		return "", time.Since(start), ctx.Err()
	}
}

// Loader returns the input for a challenge; it should report a missing
// input with input.ErrMissing.
type Loader func(id challenge.ID) (string, error)

// SolveAll solves every challenge whose input load succeeds, at most workers
// at a time. Per-challenge failures are reported in Result.Err and do not
// stop the others; only cancellation of ctx is returned as an error.
// Results keep the order of cs.
func (r *Runner) SolveAll(ctx context.Context, cs []challenge.Challenge, load Loader, workers int) ([]Result, error) {
	results := make([]Result, len(cs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, c := range cs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			in, err := load(c.ID)
			switch {
			case errors.Is(err, input.ErrMissing):
				r.log.Info("skipping challenge without input", "id", c.ID.String())
				results[i] = Result{ID: c.ID, Skipped: true}
				return nil
			case err != nil:
				results[i] = Result{ID: c.ID, Err: err}
				return nil
			}
			res, err := r.Solve(ctx, c, in)
			res.Err = err
			if err != nil {
				r.log.Warn("challenge failed", "id", c.ID.String(), "error", err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
