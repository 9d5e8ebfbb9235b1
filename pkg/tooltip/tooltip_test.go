package tooltip_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/tooltip"
)

func fixedSize(w, h float64) tooltip.Measurer {
	return func(string) tooltip.Size { return tooltip.Size{Width: w, Height: h} }
}

func TestPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		anchor tooltip.Rect
		tip    tooltip.Size
		want   tooltip.Point
	}{
		{
			name:   "centred above",
			anchor: tooltip.Rect{Left: 100, Top: 200, Width: 80, Height: 30},
			tip:    tooltip.Size{Width: 40, Height: 20},
			want:   tooltip.Point{Left: 120, Top: 172},
		},
		{
			name:   "wider than anchor",
			anchor: tooltip.Rect{Left: 10, Top: 50, Width: 20, Height: 20},
			tip:    tooltip.Size{Width: 100, Height: 30},
			want:   tooltip.Point{Left: -30, Top: 12},
		},
		{
			name:   "zero sized",
			anchor: tooltip.Rect{},
			tip:    tooltip.Size{},
			want:   tooltip.Point{Left: 0, Top: -tooltip.Gap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tooltip.Position(tt.anchor, tt.tip))
		})
	}
}

func TestPosition_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		anchor := tooltip.Rect{
			Left:   float64(rapid.IntRange(-500, 2000).Draw(t, "left")),
			Top:    float64(rapid.IntRange(-500, 2000).Draw(t, "top")),
			Width:  float64(rapid.IntRange(0, 800).Draw(t, "width")),
			Height: float64(rapid.IntRange(0, 800).Draw(t, "height")),
		}
		tip := tooltip.Size{
			Width:  float64(rapid.IntRange(0, 400).Draw(t, "tip_width")),
			Height: float64(rapid.IntRange(0, 100).Draw(t, "tip_height")),
		}
		p := tooltip.Position(anchor, tip)

		if got, want := p.Left+tip.Width/2, anchor.Left+anchor.Width/2; got != want {
			t.Fatalf("tooltip centre %v, anchor centre %v", got, want)
		}
		if got := anchor.Top - (p.Top + tip.Height); got != tooltip.Gap {
			t.Fatalf("gap %v, want %v", got, tooltip.Gap)
		}
	})
}

func TestManager(t *testing.T) {
	t.Parallel()

	m := tooltip.NewManager(tooltip.WithMeasurer(fixedSize(40, 20)), tooltip.WithLogger(logger.Discard()))
	anchor := tooltip.Rect{Left: 100, Top: 200, Width: 80, Height: 30}

	tip, err := m.Show("download", "Download PDF", anchor)
	require.NoError(t, err)
	assert.Equal(t, tooltip.Point{Left: 120, Top: 172}, tip.At)

	_, err = m.Show("download", "Download as PDF", anchor)
	require.NoError(t, err)
	assert.Len(t, m.Visible(), 1, "one tooltip per target")
	got, ok := m.Get("download")
	require.True(t, ok)
	assert.Equal(t, "Download as PDF", got.Text)

	_, err = m.Show("edit", "", anchor)
	assert.ErrorIs(t, err, tooltip.ErrNoText)

	assert.True(t, m.Hide("download"))
	assert.False(t, m.Hide("download"))
	assert.False(t, m.Hide("never-shown"))
	assert.Empty(t, m.Visible())
}

func TestEstimateSize(t *testing.T) {
	t.Parallel()

	short := tooltip.EstimateSize("Hi")
	long := tooltip.EstimateSize("Hello there")
	assert.Greater(t, long.Width, short.Width)
	assert.Equal(t, short.Height, long.Height)
	assert.Equal(t, tooltip.EstimateSize("ab").Width, tooltip.EstimateSize("éé").Width)
}

type staticLayout map[string]struct {
	rect tooltip.Rect
	text string
}

func (l staticLayout) Anchor(target string) (tooltip.Rect, bool) {
	e, ok := l[target]
	return e.rect, ok
}

func (l staticLayout) Text(target string) string { return l[target].text }

func TestManager_Bind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bus := events.NewMemoryBus(events.WithLogger(logger.Discard()))
	defer bus.Close()

	layout := staticLayout{
		"share": {rect: tooltip.Rect{Left: 0, Top: 100, Width: 20, Height: 20}, text: "Share resume"},
		"blank": {rect: tooltip.Rect{}, text: ""},
	}
	m := tooltip.NewManager(tooltip.WithMeasurer(fixedSize(10, 10)), tooltip.WithLogger(logger.Discard()))
	stop := m.Bind(ctx, bus, layout)
	defer stop()

	for _, target := range []string{"share", "blank", "unknown"} {
		require.NoError(t, bus.Publish(ctx, events.Event{Type: events.MouseEnter, Target: target}))
	}
	assert.Eventually(t, func() bool {
		_, ok := m.Get("share")
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, m.Visible(), 1)

	require.NoError(t, bus.Publish(ctx, events.Event{Type: events.MouseLeave, Target: "share"}))
	assert.Eventually(t, func() bool { return len(m.Visible()) == 0 }, time.Second, 5*time.Millisecond)
}

type slowLayout struct {
	staticLayout
	delay time.Duration
}

func (l slowLayout) Anchor(target string) (tooltip.Rect, bool) {
	time.Sleep(l.delay)
	return l.staticLayout.Anchor(target)
}

func TestManager_BindSurvivesBurst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bus := events.NewMemoryBus(events.WithBufferSize(2), events.WithLogger(logger.Discard()))
	defer bus.Close()

	layout := slowLayout{
		staticLayout: staticLayout{
			"a": {rect: tooltip.Rect{Width: 10, Height: 10}, text: "Edit"},
			"b": {rect: tooltip.Rect{Left: 50, Width: 10, Height: 10}, text: "Delete"},
		},
		delay: 20 * time.Millisecond,
	}
	m := tooltip.NewManager(tooltip.WithMeasurer(fixedSize(10, 10)), tooltip.WithLogger(logger.Discard()))
	stop := m.Bind(ctx, bus, layout)
	defer stop()

	for range 6 {
		require.NoError(t, bus.Publish(ctx, events.Event{Type: events.MouseEnter, Target: "a"}))
	}
	assert.Equal(t, 1, bus.Len())

	assert.Eventually(t, func() bool {
		_, ok := m.Get("a")
		return ok
	}, time.Second, 5*time.Millisecond)

	// Let the listener drain what it buffered before the next hover.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, bus.Publish(ctx, events.Event{Type: events.MouseEnter, Target: "b"}))
	assert.Eventually(t, func() bool {
		_, ok := m.Get("b")
		return ok
	}, time.Second, 5*time.Millisecond)
}
