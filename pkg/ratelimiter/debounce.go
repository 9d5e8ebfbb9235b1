package ratelimiter

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rojgarpatra/uikit/pkg/logger"
)

// Debouncer delays a callback until the configured delay has passed without
// another call. Only the arguments of the last call in a burst are used.
type Debouncer[A any] struct {
	fn    func(args ...A)
	delay time.Duration
	opts  options

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	args    []A
	pending bool

	// run serialises callback execution across timer goroutines.
	run sync.Mutex
	// inflight counts fires that have claimed their arguments but not
	// returned from fn yet.
	inflight sync.WaitGroup
}

// NewDebouncer creates a debouncer for fn. A negative delay or nil fn is
// rejected with ErrInvalidConfig.
func NewDebouncer[A any](fn func(args ...A), delay time.Duration, opts ...Option) (*Debouncer[A], error) {
	if err := validate(fn, delay); err != nil {
		return nil, err
	}

	return &Debouncer[A]{
		fn:    fn,
		delay: delay,
		opts:  newOptions(opts),
	}, nil
}

// Call cancels any pending invocation and schedules fn(args...) to run after
// the delay. The arguments are copied.
func (d *Debouncer[A]) Call(args ...A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.opts.metrics.call(d.opts.name, ModeDebounce)

	if d.timer != nil {
		d.timer.Stop()
	}
	if d.pending {
		d.opts.metrics.drop(d.opts.name, ModeDebounce)
	}

	// A timer that already fired but has not taken the lock yet sees a newer
	// generation and discards itself.
	d.gen++
	gen := d.gen
	d.args = slices.Clone(args)
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop discards any pending invocation. The debouncer stays usable.
func (d *Debouncer[A]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending {
		d.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "debounced call discarded",
			logger.Component("ratelimiter"),
			slog.String("limiter", d.opts.name),
		)
	}
	d.gen++
	d.args = nil
	d.pending = false
}

// Flush runs a pending invocation now, on the calling goroutine, and
// reports whether there was one. When a timer has already claimed the
// invocation, Flush waits for it to finish and reports false. Flush must
// not be called from the callback itself.
func (d *Debouncer[A]) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if !d.pending {
		d.mu.Unlock()
		d.inflight.Wait()
		return false
	}
	d.gen++
	args := d.take()
	d.mu.Unlock()

	d.invoke(args)
	return true
}

func (d *Debouncer[A]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	args := d.take()
	d.mu.Unlock()

	d.invoke(args)
}

// take claims the pending arguments. d.mu must be held.
func (d *Debouncer[A]) take() []A {
	args := d.args
	d.args = nil
	d.pending = false
	d.inflight.Add(1)
	return args
}

func (d *Debouncer[A]) invoke(args []A) {
	defer d.inflight.Done()

	d.run.Lock()
	defer d.run.Unlock()

	d.opts.metrics.invoke(d.opts.name, ModeDebounce)
	d.fn(args...)
}
