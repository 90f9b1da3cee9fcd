// Package fanout runs a set of independent tasks concurrently and joins their
// results once every task has finished.
//
// Each task returns its own slice of results. The slices are stored in a slot
// owned by the task and are only concatenated after the barrier, so no task
// ever touches another task's results. Results come back in dispatch order.
//
// A Group either fails fast (first error wins, the shared context is
// cancelled) or runs best-effort (failing tasks contribute nothing and their
// errors are handed to Policy.OnDrop).
package fanout

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Policy configures how a Group schedules tasks and reacts to failures
type Policy struct {
	// FailFast aborts the group on the first task error
	FailFast bool
	// Limit caps the number of tasks running at once (<= 0 means no limit)
	Limit int
	// OnDrop is called with every error swallowed in best-effort mode, possibly
	// from several tasks at once
	OnDrop func(error)
}

// Group joins N concurrent tasks producing slices of T
type Group[T any] struct {
	eg     *errgroup.Group
	ctx    context.Context
	policy Policy
	slots  []*[]T
}

// New returns an empty Group bound to ctx
func New[T any](ctx context.Context, p Policy) *Group[T] {
	eg, gctx := errgroup.WithContext(ctx)
	if p.Limit > 0 {
		eg.SetLimit(p.Limit)
	}
	return &Group[T]{eg: eg, ctx: gctx, policy: p}
}

// Go dispatches fn. It must only be called from the goroutine that calls Wait.
func (g *Group[T]) Go(fn func(ctx context.Context) ([]T, error)) {
	slot := new([]T)
	g.slots = append(g.slots, slot)

	g.eg.Go(func() error {
		if err := g.ctx.Err(); err != nil {
			return err
		}

		out, err := fn(g.ctx)
		if err != nil {
			if g.policy.FailFast || isCancellation(g.ctx, err) {
				return err
			}
			if g.policy.OnDrop != nil {
				g.policy.OnDrop(err)
			}
			return nil
		}

		*slot = out
		return nil
	})
}

// Wait blocks until every dispatched task has finished and returns the
// concatenated results, or the first error when the group failed
func (g *Group[T]) Wait() ([]T, error) {
	if err := g.eg.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, s := range g.slots {
		n += len(*s)
	}

	out := make([]T, 0, n)
	for _, s := range g.slots {
		out = append(out, *s...)
	}
	return out, nil
}

// Map runs fn once per item under p and joins the results
func Map[S, T any](ctx context.Context, p Policy, items []S, fn func(ctx context.Context, item S) ([]T, error)) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}

	g := New[T](ctx, p)
	for _, item := range items {
		g.Go(func(ctx context.Context) ([]T, error) {
			return fn(ctx, item)
		})
	}
	return g.Wait()
}

// isCancellation reports whether err comes from ctx being cancelled by a
// caller, which is never swallowed even in best-effort mode
func isCancellation(ctx context.Context, err error) bool {
	if ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
