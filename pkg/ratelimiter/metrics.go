package ratelimiter

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus counters shared by any number of limiters.
// All methods are safe on a nil receiver.
type Metrics struct {
	calls       *prometheus.CounterVec
	invocations *prometheus.CounterVec
	dropped     *prometheus.CounterVec
}

// NewMetrics creates and registers the limiter counters. Collectors that are
// already registered on reg are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	labels := []string{"limiter", "mode"}
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uikit",
			Subsystem: "ratelimiter",
			Name:      "calls_total",
			Help:      "Number of calls made to rate limited wrappers.",
		}, labels),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uikit",
			Subsystem: "ratelimiter",
			Name:      "invocations_total",
			Help:      "Number of times a wrapped callback actually ran.",
		}, labels),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uikit",
			Subsystem: "ratelimiter",
			Name:      "dropped_total",
			Help:      "Calls dropped by throttling or superseded by a later debounced call.",
		}, labels),
	}

	var err error
	if m.calls, err = register(reg, m.calls); err != nil {
		return nil, err
	}
	if m.invocations, err = register(reg, m.invocations); err != nil {
		return nil, err
	}
	if m.dropped, err = register(reg, m.dropped); err != nil {
		return nil, err
	}

	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *Metrics) call(name string, mode Mode) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(name, mode.String()).Inc()
}

func (m *Metrics) invoke(name string, mode Mode) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(name, mode.String()).Inc()
}

func (m *Metrics) drop(name string, mode Mode) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(name, mode.String()).Inc()
}
