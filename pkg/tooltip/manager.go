package tooltip

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
)

// Tip is a tooltip currently on screen.
type Tip struct {
	Target string
	Text   string
	At     Point
}

// Measurer reports the rendered size of a tooltip text.
type Measurer func(text string) Size

// Layout supplies what the DOM would: each target's bounding box and text.
type Layout interface {
	Anchor(target string) (Rect, bool)
	Text(target string) string
}

// Option configures a Manager.
type Option func(*Manager)

func WithMeasurer(m Measurer) Option {
	return func(mgr *Manager) {
		if m != nil {
			mgr.measure = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(mgr *Manager) {
		if l != nil {
			mgr.logger = l
		}
	}
}

// Manager keeps at most one tooltip per target.
type Manager struct {
	measure Measurer
	logger  *slog.Logger

	mu   sync.RWMutex
	tips map[string]Tip
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		measure: EstimateSize,
		logger:  slog.Default(),
		tips:    make(map[string]Tip),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Show places a tooltip with text above anchor. An existing tooltip for the
// same target is replaced.
func (m *Manager) Show(target, text string, anchor Rect) (Tip, error) {
	if text == "" {
		return Tip{}, ErrNoText
	}
	tip := Tip{Target: target, Text: text, At: Position(anchor, m.measure(text))}

	m.mu.Lock()
	m.tips[target] = tip
	m.mu.Unlock()
	return tip, nil
}

// Hide removes the tooltip of target. It reports whether one was shown.
func (m *Manager) Hide(target string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tips[target]
	delete(m.tips, target)
	return ok
}

// Get returns the tooltip shown for target.
func (m *Manager) Get(target string) (Tip, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tip, ok := m.tips[target]
	return tip, ok
}

// Visible returns a copy of every shown tooltip keyed by target.
func (m *Manager) Visible() map[string]Tip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.tips)
}

// Bind shows tooltips on mouseenter and hides them on mouseleave. Targets
// unknown to layout or without text are ignored.
func (m *Manager) Bind(ctx context.Context, bus events.Bus, layout Layout) (stop func()) {
	return events.Attach(ctx, bus, func(ctx context.Context, e events.Event) {
		switch e.Type {
		case events.MouseEnter:
			anchor, ok := layout.Anchor(e.Target)
			if !ok {
				return
			}
			if _, err := m.Show(e.Target, layout.Text(e.Target), anchor); err != nil {
				m.logger.DebugContext(ctx, "tooltip skipped",
					logger.Component("tooltip"),
					logger.Target(e.Target),
					logger.Error(err),
				)
			}
		case events.MouseLeave:
			m.Hide(e.Target)
		}
	}, events.MouseEnter, events.MouseLeave)
}
