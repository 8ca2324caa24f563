// Package timebox runs units of work under individual deadlines without
// letting slow or failing work block the caller past its budget.
package timebox

import (
	"context"
	"fmt"
	"time"
)

// Status classifies the outcome of a time-boxed run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusTimeout Status = "timeout"
	StatusError   Status = "error"
)

// Outcome is the single result produced by Run. Elapsed is measured from
// call start to outcome and never includes work that continued in the
// background after a timeout.
type Outcome struct {
	Status  Status
	Value   any
	Err     error
	Elapsed time.Duration
}

// Runner executes work with bounded concurrent capacity. A Runner is
// safe for concurrent use and is meant to be shared across requests so
// the worker population stays bounded for the process lifetime.
type Runner struct {
	slots chan struct{}
}

// NewRunner creates a Runner with the given worker capacity.
func NewRunner(capacity int) *Runner {
	if capacity < 1 {
		capacity = 1
	}
	return &Runner{slots: make(chan struct{}, capacity)}
}

type result struct {
	value any
	err   error
}

// Run executes fn on its own goroutine, racing it against budget.
//
// The context passed to fn carries the budget as its deadline, so
// cooperative work stops itself on overrun. Work that ignores the
// context keeps running detached after a timeout; its eventual result or
// panic is dropped into a buffered channel nothing reads, so it can
// neither block nor crash anything. Waiting for a free worker slot
// counts against the budget.
func (r *Runner) Run(ctx context.Context, budget time.Duration, fn func(ctx context.Context) (any, error)) Outcome {
	start := time.Now()
	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case r.slots <- struct{}{}:
	case <-timer.C:
		return Outcome{
			Status:  StatusTimeout,
			Err:     fmt.Errorf("no worker slot within %s: %w", budget, context.DeadlineExceeded),
			Elapsed: budget,
		}
	case <-ctx.Done():
		return Outcome{Status: StatusError, Err: ctx.Err(), Elapsed: time.Since(start)}
	}

	runCtx, cancel := context.WithDeadline(ctx, start.Add(budget))
	defer cancel()

	done := make(chan result, 1)
	go func() {
		defer func() { <-r.slots }()
		defer func() {
			if rec := recover(); rec != nil {
				done <- result{err: fmt.Errorf("panic: %v", rec)}
			}
		}()
		v, err := fn(runCtx)
		done <- result{value: v, err: err}
	}()

	select {
	case res := <-done:
		elapsed := time.Since(start)
		if res.err != nil {
			return Outcome{Status: StatusError, Err: res.err, Elapsed: elapsed}
		}
		return Outcome{Status: StatusOK, Value: res.value, Elapsed: elapsed}
	case <-timer.C:
		return Outcome{
			Status:  StatusTimeout,
			Err:     fmt.Errorf("deadline %s exceeded: %w", budget, context.DeadlineExceeded),
			Elapsed: budget,
		}
	case <-ctx.Done():
		// Caller gone. Non-cooperative work detaches exactly like on a
		// timeout; its result lands in the buffered channel unread.
		return Outcome{Status: StatusError, Err: ctx.Err(), Elapsed: time.Since(start)}
	}
}
