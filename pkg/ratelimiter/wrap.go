package ratelimiter

import (
	"fmt"
	"time"
)

// Wrap returns fn wrapped with the given policy. The returned function
// forwards its arguments verbatim to fn when the policy lets it run.
func Wrap[A any](fn func(args ...A), delay time.Duration, mode Mode, opts ...Option) (func(args ...A), error) {
	switch mode {
	case ModeDebounce:
		d, err := NewDebouncer(fn, delay, opts...)
		if err != nil {
			return nil, err
		}
		return d.Call, nil
	case ModeThrottle:
		t, err := NewThrottler(fn, delay, opts...)
		if err != nil {
			return nil, err
		}
		return func(args ...A) { t.Call(args...) }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mode %v", ErrInvalidConfig, mode)
	}
}
