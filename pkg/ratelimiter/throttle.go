package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rojgarpatra/uikit/pkg/logger"
)

// Throttler runs a callback immediately on the first call of a window and
// drops every call until the window of the configured delay has elapsed.
type Throttler[A any] struct {
	fn    func(args ...A)
	delay time.Duration
	opts  options

	mu        sync.Mutex
	open      bool
	windowEnd time.Time
}

// NewThrottler creates a throttler for fn. A negative delay or nil fn is
// rejected with ErrInvalidConfig.
func NewThrottler[A any](fn func(args ...A), delay time.Duration, opts ...Option) (*Throttler[A], error) {
	if err := validate(fn, delay); err != nil {
		return nil, err
	}

	return &Throttler[A]{
		fn:    fn,
		delay: delay,
		opts:  newOptions(opts),
	}, nil
}

// Call runs fn(args...) synchronously when no window is open and reports
// whether it ran. A call at exactly the window expiry is outside the window.
func (t *Throttler[A]) Call(args ...A) bool {
	t.mu.Lock()
	t.opts.metrics.call(t.opts.name, ModeThrottle)

	now := t.opts.now()
	if t.open && now.Before(t.windowEnd) {
		t.mu.Unlock()
		t.opts.metrics.drop(t.opts.name, ModeThrottle)
		t.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "throttled call dropped",
			logger.Component("ratelimiter"),
			slog.String("limiter", t.opts.name),
			slog.Duration("remaining", t.windowEnd.Sub(now)),
		)
		return false
	}

	t.open = true
	t.windowEnd = now.Add(t.delay)
	t.mu.Unlock()

	t.opts.metrics.invoke(t.opts.name, ModeThrottle)
	t.fn(args...)
	return true
}
