// Package fetch coordinates the parallel loads a screen issues when it opens,
// and makes sure late results are dropped once the caller has gone away.
package fetch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Guard applies results only while its context is alive. Once the request
// is cancelled (the client went away, a deadline passed) Apply becomes a
// no-op, so a slow load can never overwrite state that was already handed
// back.
type Guard struct {
	ctx context.Context
	mu  sync.Mutex
}

func NewGuard(ctx context.Context) *Guard {
	return &Guard{ctx: ctx}
}

// Apply runs fn under the guard's lock if the context is still live and
// reports whether it ran.
func (g *Guard) Apply(fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctx.Err() != nil {
		return false
	}
	fn()
	return true
}

// Alive reports whether results would still be applied.
func (g *Guard) Alive() bool {
	return g.ctx.Err() == nil
}

// Group runs loads in parallel. The first failure cancels the others.
type Group struct {
	eg    *errgroup.Group
	ctx   context.Context
	guard *Guard
}

// NewGroup derives the group context from ctx. Results are guarded by ctx
// itself, not the group context, so sibling failures do not block applying
// loads that already succeeded.
func NewGroup(ctx context.Context) *Group {
	eg, gctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: gctx, guard: NewGuard(ctx)}
}

// Go starts fn.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		return fn(g.ctx)
	})
}

// Wait blocks until every load returned and yields the first error. When the
// parent context was cancelled its error is returned instead of whatever the
// aborted loads reported.
func (g *Group) Wait() error {
	err := g.eg.Wait()
	if cerr := g.guard.ctx.Err(); cerr != nil {
		return cerr
	}
	return err
}

// Guard returns the guard protecting the group's results.
func (g *Group) Guard() *Guard {
	return g.guard
}

// Load runs fetch inside g and hands its result to apply through the guard.
func Load[T any](g *Group, fetch func(ctx context.Context) (T, error), apply func(T)) {
	g.Go(func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			return err
		}
		g.guard.Apply(func() { apply(v) })
		return nil
	})
}
