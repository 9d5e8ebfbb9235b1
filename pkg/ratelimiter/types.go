package ratelimiter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Mode selects the rate limiting policy applied by Wrap.
type Mode int

const (
	// ModeDebounce runs the callback once after a quiet period.
	ModeDebounce Mode = iota
	// ModeThrottle runs the callback at most once per window, at window start.
	ModeThrottle
)

func (m Mode) String() string {
	switch m {
	case ModeDebounce:
		return "debounce"
	case ModeThrottle:
		return "throttle"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name ("debounce" or "throttle") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debounce":
		return ModeDebounce, nil
	case "throttle":
		return ModeThrottle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures a Debouncer or Throttler.
type Option func(*options)

type options struct {
	name    string
	now     func() time.Time
	logger  *slog.Logger
	metrics *Metrics
}

// WithName sets the label used for this instance in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithClock replaces time.Now for throttle window bookkeeping.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches Prometheus counters to the instance.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:   "default",
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate[A any](fn func(args ...A), delay time.Duration) error {
	if fn == nil {
		return fmt.Errorf("%w: callback must not be nil", ErrInvalidConfig)
	}
	if delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %v", ErrInvalidConfig, delay)
	}
	return nil
}
