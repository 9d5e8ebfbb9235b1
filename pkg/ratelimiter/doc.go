// Package ratelimiter provides debounce and throttle wrappers that enforce
// temporal execution constraints on an arbitrary callback.
//
// A wrapped callback is invoked at most as often as its policy permits,
// regardless of how frequently the wrapper itself is called. Every instance
// owns its own pending timer or cooldown window; nothing is shared between
// instances.
//
// # Debounce
//
// Each call cancels any pending invocation and schedules the callback to run
// after the configured delay of silence. Only the last call of a burst
// executes, with that call's arguments:
//
//	d, err := ratelimiter.NewDebouncer(func(q ...string) {
//		search(q[0])
//	}, 300*time.Millisecond)
//	if err != nil {
//		return err
//	}
//	defer d.Stop()
//
//	d.Call("r")
//	d.Call("re")
//	d.Call("res") // only this one runs, 300ms after the last call
//
// A zero delay degenerates to "run once per tick with the latest arguments".
//
// # Throttle
//
// The first call in a window runs immediately and opens a cooldown window of
// the configured delay. Calls arriving during the cooldown are dropped, not
// queued. A call arriving exactly at window expiry runs and opens a new window:
//
//	t, err := ratelimiter.NewThrottler(func(_ ...struct{}) {
//		redraw()
//	}, 50*time.Millisecond)
//	if err != nil {
//		return err
//	}
//
//	ran := t.Call() // true for the first call, false while cooling down
//
// # Mode-agnostic wrapping
//
// Wrap returns a plain function for callers that only need the wrapped
// callback:
//
//	onInput, err := ratelimiter.Wrap(handler, delay, ratelimiter.ModeDebounce)
//
// # Error Handling
//
// Construction fails with ErrInvalidConfig when the delay is negative, the
// callback is nil or the mode is unknown. Calls never fail.
//
// # Metrics
//
// NewMetrics registers Prometheus counters for calls, invocations and dropped
// calls; pass the result with WithMetrics. A nil *Metrics is a no-op.
//
// # Thread Safety
//
// Instances are safe for concurrent use. A debouncer never runs its callback
// concurrently with itself.
package ratelimiter
