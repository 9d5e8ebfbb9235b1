package events_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
)

func newBus(t *testing.T, opts ...events.MemoryOption) *events.MemoryBus {
	t.Helper()
	opts = append([]events.MemoryOption{events.WithLogger(logger.Discard())}, opts...)
	b := events.NewMemoryBus(opts...)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func receive(t *testing.T, sub events.Subscriber) events.Event {
	t.Helper()
	select {
	case e, ok := <-sub.Receive(context.Background()):
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

func TestMemoryBus_Publish(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		b := newBus(t)
		ctx := context.Background()
		s1 := b.Subscribe(ctx)
		s2 := b.Subscribe(ctx)

		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Click, Target: "theme-toggle"}))

		assert.Equal(t, "theme-toggle", receive(t, s1).Target)
		assert.Equal(t, "theme-toggle", receive(t, s2).Target)
	})

	t.Run("filters by type", func(t *testing.T) {
		b := newBus(t)
		ctx := context.Background()
		blurs := b.Subscribe(ctx, events.Blur)

		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Input, Target: "email"}))
		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Blur, Target: "email", Value: "x"}))

		e := receive(t, blurs)
		assert.Equal(t, events.Blur, e.Type)
		assert.Equal(t, "x", e.Value)
	})

	t.Run("stamps missing time", func(t *testing.T) {
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		b := newBus(t, events.WithClock(func() time.Time { return at }))
		sub := b.Subscribe(context.Background())

		require.NoError(t, b.Publish(context.Background(), events.Event{Type: events.Click}))
		assert.Equal(t, at, receive(t, sub).At)

		given := at.Add(time.Hour)
		require.NoError(t, b.Publish(context.Background(), events.Event{Type: events.Click, At: given}))
		assert.Equal(t, given, receive(t, sub).At)
	})

	t.Run("full buffer skips event and keeps subscriber", func(t *testing.T) {
		b := newBus(t, events.WithBufferSize(1))
		ctx := context.Background()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Click, Target: "1"}))
		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Click, Target: "2"}))

		assert.Equal(t, 1, b.Len())
		assert.Equal(t, "1", receive(t, sub).Target)

		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Click, Target: "3"}))
		assert.Equal(t, "3", receive(t, sub).Target)
		assert.Equal(t, 1, b.Len())
	})

	t.Run("subscriber closed by owner is removed", func(t *testing.T) {
		b := newBus(t)
		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())

		require.NoError(t, b.Publish(ctx, events.Event{Type: events.Click}))
		assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("publish after close", func(t *testing.T) {
		b := events.NewMemoryBus()
		require.NoError(t, b.Close())
		assert.ErrorIs(t, b.Publish(context.Background(), events.Event{Type: events.Click}), events.ErrBusClosed)
	})
}

func TestMemoryBus_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := newBus(t)
		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		require.Equal(t, 1, b.Len())

		cancel()
		assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := events.NewMemoryBus()
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("close does not wait for live contexts", func(t *testing.T) {
		b := events.NewMemoryBus()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		_ = b.Subscribe(ctx)

		done := make(chan struct{})
		go func() {
			_ = b.Close()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close blocked on a live subscription context")
		}
		require.NoError(t, b.Close())
	})

	t.Run("subscriber close is idempotent", func(t *testing.T) {
		b := newBus(t)
		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
	})
}

func TestMemoryBus_ConcurrentPublish(t *testing.T) {
	t.Parallel()

	b := newBus(t, events.WithBufferSize(1000))
	ctx := context.Background()
	sub := b.Subscribe(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = b.Publish(ctx, events.Event{Type: events.Input})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, sub.Receive(ctx), 500)
}
