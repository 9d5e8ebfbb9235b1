package ratelimiter_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rojgarpatra/uikit/pkg/ratelimiter"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("debounce mode", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[string]{}
		wrapped, err := ratelimiter.Wrap(rec.fn, 10*time.Millisecond, ratelimiter.ModeDebounce)
		require.NoError(t, err)

		wrapped("a")
		wrapped("b")
		require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, time.Millisecond)
		assert.Equal(t, []string{"b"}, rec.last())
	})

	t.Run("throttle mode", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[string]{}
		wrapped, err := ratelimiter.Wrap(rec.fn, time.Hour, ratelimiter.ModeThrottle)
		require.NoError(t, err)

		wrapped("a")
		wrapped("b")
		assert.Equal(t, 1, rec.count())
		assert.Equal(t, []string{"a"}, rec.last())
	})

	t.Run("rejects negative delay", func(t *testing.T) {
		t.Parallel()

		for _, mode := range []ratelimiter.Mode{ratelimiter.ModeDebounce, ratelimiter.ModeThrottle} {
			wrapped, err := ratelimiter.Wrap(func(...int) {}, -time.Millisecond, mode)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
			assert.Nil(t, wrapped)
		}
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		wrapped, err := ratelimiter.Wrap(func(...int) {}, time.Millisecond, ratelimiter.Mode(42))
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		assert.Nil(t, wrapped)
	})
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ratelimiter.Mode
		wantErr bool
	}{
		{in: "debounce", want: ratelimiter.ModeDebounce},
		{in: " Throttle ", want: ratelimiter.ModeThrottle},
		{in: "queue", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ratelimiter.ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ratelimiter.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(ratelimiter.ParseMode(got.String())))
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := ratelimiter.NewMetrics(reg)
	require.NoError(t, err)

	// registering twice reuses the existing collectors
	again, err := ratelimiter.NewMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, again)

	clock := newFakeClock()
	th, err := ratelimiter.NewThrottler(func(...int) {}, time.Second,
		ratelimiter.WithClock(clock.Now),
		ratelimiter.WithMetrics(m),
		ratelimiter.WithName("scroll"),
	)
	require.NoError(t, err)

	th.Call()
	th.Call()
	th.Call()

	count, err := testutil.GatherAndCount(reg,
		"uikit_ratelimiter_calls_total",
		"uikit_ratelimiter_invocations_total",
		"uikit_ratelimiter_dropped_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, metric := range mf.GetMetric() {
			values[mf.GetName()] += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 3.0, values["uikit_ratelimiter_calls_total"])
	assert.Equal(t, 1.0, values["uikit_ratelimiter_invocations_total"])
	assert.Equal(t, 2.0, values["uikit_ratelimiter_dropped_total"])
}

func TestThrottler_NeverExceedsPolicy(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		delay := time.Duration(rapid.IntRange(1, 100).Draw(rt, "delay_ms")) * time.Millisecond
		gaps := rapid.SliceOfN(rapid.IntRange(0, 60), 1, 200).Draw(rt, "gaps_ms")

		clock := newFakeClock()
		start := clock.Now()
		var runs []time.Time
		th, err := ratelimiter.NewThrottler(func(...int) { runs = append(runs, clock.Now()) }, delay,
			ratelimiter.WithClock(clock.Now))
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		for i, gap := range gaps {
			ran := th.Call(i)
			if i == 0 && !ran {
				rt.Fatalf("first call must run immediately")
			}
			clock.Advance(time.Duration(gap) * time.Millisecond)
		}

		for i := 1; i < len(runs); i++ {
			if runs[i].Sub(runs[i-1]) < delay {
				rt.Fatalf("invocations %v apart, policy allows one per %v", runs[i].Sub(runs[i-1]), delay)
			}
		}

		span := clock.Now().Sub(start)
		maxRuns := int(span/delay) + 1
		if len(runs) > maxRuns {
			rt.Fatalf("%d invocations over %v exceed bound %d", len(runs), span, maxRuns)
		}
	})
}
