package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rojgarpatra/uikit/pkg/logger"
)

const defaultBufferSize = 64

// MemoryBus is an in-process Bus. An event that does not fit in a
// subscriber's buffer is skipped for that subscriber only; the subscriber
// stays registered. All methods are safe for concurrent use.
type MemoryBus struct {
	subscribers map[*subscriber]struct{}
	bufferSize  int
	logger      *slog.Logger
	now         func() time.Time
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// MemoryOption configures a MemoryBus.
type MemoryOption func(*MemoryBus)

// WithBufferSize sets the per-subscriber channel size. Values below 1 are raised to 1.
func WithBufferSize(n int) MemoryOption {
	return func(b *MemoryBus) { b.bufferSize = max(n, 1) }
}

func WithLogger(l *slog.Logger) MemoryOption {
	return func(b *MemoryBus) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithClock sets the function used to stamp events published without At.
func WithClock(now func() time.Time) MemoryOption {
	return func(b *MemoryBus) {
		if now != nil {
			b.now = now
		}
	}
}

func NewMemoryBus(opts ...MemoryOption) *MemoryBus {
	b := &MemoryBus{
		subscribers: make(map[*subscriber]struct{}),
		bufferSize:  defaultBufferSize,
		logger:      slog.Default(),
		now:         time.Now,
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a subscriber for types. After Close it returns an
// already closed subscriber.
func (b *MemoryBus) Subscribe(ctx context.Context, types ...Type) Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber(b.bufferSize, types)
	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
			}
		}()
	}

	return sub
}

// Publish stamps e with the bus clock when At is zero and delivers it
// without blocking. Subscribers with a full buffer miss e.
func (b *MemoryBus) Publish(ctx context.Context, e Event) error {
	if e.At.IsZero() {
		e.At = b.now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for sub := range b.subscribers {
		if !sub.wants(e.Type) {
			continue
		}
		switch sub.send(e) {
		case bufferFull:
			b.logger.WarnContext(ctx, "subscriber buffer full, event skipped",
				logger.Component("events"),
				logger.Event(string(e.Type)),
				logger.Target(e.Target),
			)
		case subscriberClosed:
			// Closed directly by its owner; removal needs the write lock.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

// Close is idempotent.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()
	return nil
}

// Len returns the number of active subscribers.
func (b *MemoryBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

func (b *MemoryBus) unsubscribe(sub *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
