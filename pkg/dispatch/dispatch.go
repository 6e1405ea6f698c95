package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Go runs fn on a fresh goroutine and reports its outcome on the returned
// buffered channel. A panic inside fn is recovered and delivered as an
// error, so a misbehaving closure cannot take down the process.
func Go(fn func()) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- protect(func() error {
			fn()
			return nil
		})
	}()
	return done
}

// After runs fn on a background goroutine once d has elapsed. The returned
// stop function cancels the dispatch and reports whether it fired in time
// to prevent the run.
func After(d time.Duration, fn func()) (stop func() bool) {
	t := time.AfterFunc(d, func() {
		_ = protect(func() error {
			fn()
			return nil
		})
	})
	return t.Stop
}

// Await runs fn in the background and waits until it finishes or ctx is
// canceled, whichever comes first. On cancellation the goroutine keeps
// running to completion, but its result is discarded.
func Await(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- protect(fn)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GroupOption configures the errgroup returned by Group.
type GroupOption func(*errgroup.Group)

// WithLimit caps the number of concurrently running closures in the group.
func WithLimit(n int) GroupOption {
	return func(g *errgroup.Group) {
		g.SetLimit(n)
	}
}

// Group returns an errgroup bound to ctx for fanning out several closures.
// The derived context is canceled on the first error.
func Group(ctx context.Context, opts ...GroupOption) (*errgroup.Group, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	for _, opt := range opts {
		opt(g)
	}
	return g, ctx
}

func protect(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("dispatch: panic: %v", v)
		}
	}()
	return fn()
}
