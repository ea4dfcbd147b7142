package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Apply(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGuard(ctx)

	applied := 0
	assert.True(t, g.Apply(func() { applied++ }))
	assert.True(t, g.Alive())

	cancel()
	assert.False(t, g.Apply(func() { applied++ }))
	assert.False(t, g.Alive())
	assert.Equal(t, 1, applied)
}

func TestGroup_LoadsInParallel(t *testing.T) {
	g := NewGroup(context.Background())

	var (
		a, b    int
		started atomic.Int32
		release = make(chan struct{})
	)
	wait := func(ctx context.Context) error {
		if started.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("loads did not run in parallel")
		}
	}

	Load(g, func(ctx context.Context) (int, error) { return 1, wait(ctx) }, func(v int) { a = v })
	Load(g, func(ctx context.Context) (int, error) { return 2, wait(ctx) }, func(v int) { b = v })

	require.NoError(t, g.Wait())
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestGroup_FirstErrorCancelsSiblings(t *testing.T) {
	g := NewGroup(context.Background())
	boom := errors.New("boom")

	var siblingErr error
	g.Go(func(ctx context.Context) error {
		return boom
	})
	g.Go(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			siblingErr = ctx.Err()
		case <-time.After(2 * time.Second):
		}
		return siblingErr
	})

	err := g.Wait()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, siblingErr, context.Canceled)
}

func TestGroup_DropsResultsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGroup(ctx)

	applied := false
	fetched := make(chan struct{})
	Load(g, func(ctx context.Context) (string, error) {
		close(fetched)
		<-ctx.Done()
		// The value arrives after the caller went away.
		return "late", nil
	}, func(string) { applied = true })

	<-fetched
	cancel()

	err := g.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, applied)
}
