package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/ratelimiter"
)

// Element IDs the dashboard reacts to.
const (
	SearchTarget   = "resume-search"
	GridViewTarget = "view-grid"
	ListViewTarget = "view-list"
)

const defaultSearchDelay = 300 * time.Millisecond

// Option configures a Dashboard.
type Option func(*settings)

type settings struct {
	delay   time.Duration
	logger  *slog.Logger
	metrics *ratelimiter.Metrics
	onApply func(query string, visible []Card)
}

// WithSearchDelay sets the quiet period before a typed query is applied.
func WithSearchDelay(d time.Duration) Option {
	return func(s *settings) { s.delay = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *ratelimiter.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// OnApply registers a callback run after each debounced query is applied.
func OnApply(fn func(query string, visible []Card)) Option {
	return func(s *settings) { s.onApply = fn }
}

// Dashboard is the resume overview: searchable cards, a grid/list toggle and
// hover lift.
type Dashboard struct {
	cards   []Card
	view    *ViewToggle
	search  *ratelimiter.Debouncer[string]
	logger  *slog.Logger
	onApply func(string, []Card)

	mu      sync.RWMutex
	query   string
	visible []bool
	hovered map[string]bool
}

// New builds a dashboard over cards. Card IDs must be unique.
func New(cards []Card, opts ...Option) (*Dashboard, error) {
	s := settings{delay: defaultSearchDelay, logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	seen := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	d := &Dashboard{
		cards:   slices.Clone(cards),
		view:    NewViewToggle(),
		logger:  s.logger,
		onApply: s.onApply,
		visible: Filter(cards, ""),
		hovered: make(map[string]bool),
	}

	search, err := ratelimiter.NewDebouncer(func(q ...string) {
		d.apply(q[len(q)-1])
	}, s.delay,
		ratelimiter.WithName("dashboard-search"),
		ratelimiter.WithLogger(s.logger),
		ratelimiter.WithMetrics(s.metrics),
	)
	if err != nil {
		return nil, err
	}
	d.search = search
	return d, nil
}

// Search schedules query to be applied once typing pauses.
func (d *Dashboard) Search(query string) {
	d.search.Call(query)
}

// Query returns the last applied query.
func (d *Dashboard) Query() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query
}

// Visible returns the cards matching the applied query, in input order.
func (d *Dashboard) Visible() []Card {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Card, 0, len(d.cards))
	for i, c := range d.cards {
		if d.visible[i] {
			out = append(out, c)
		}
	}
	return out
}

func (d *Dashboard) View() *ViewToggle { return d.view }

// Hover records whether the pointer is over a card.
func (d *Dashboard) Hover(cardID string, hovered bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if hovered {
		d.hovered[cardID] = true
	} else {
		delete(d.hovered, cardID)
	}
}

// Transform returns the CSS transform of a card.
func (d *Dashboard) Transform(cardID string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return HoverTransform(d.hovered[cardID])
}

// Flush applies a pending search immediately and reports whether there
// was one. It returns after any search already being applied has finished.
func (d *Dashboard) Flush() bool {
	return d.search.Flush()
}

// Close discards a pending search.
func (d *Dashboard) Close() {
	d.search.Stop()
}

// Bind routes search input, view button clicks and card hover events from bus.
func (d *Dashboard) Bind(ctx context.Context, bus events.Bus) (stop func()) {
	return events.Attach(ctx, bus, func(ctx context.Context, e events.Event) {
		switch e.Type {
		case events.Input:
			if e.Target == SearchTarget {
				d.Search(e.Value)
			}
		case events.Click:
			switch e.Target {
			case GridViewTarget:
				_ = d.view.Select(ViewGrid)
			case ListViewTarget:
				_ = d.view.Select(ViewList)
			}
		case events.MouseEnter, events.MouseLeave:
			if d.hasCard(e.Target) {
				d.Hover(e.Target, e.Type == events.MouseEnter)
			}
		}
	}, events.Input, events.Click, events.MouseEnter, events.MouseLeave)
}

func (d *Dashboard) hasCard(id string) bool {
	return slices.ContainsFunc(d.cards, func(c Card) bool { return c.ID == id })
}

func (d *Dashboard) apply(query string) {
	visible := Filter(d.cards, query)

	d.mu.Lock()
	d.query = query
	d.visible = visible
	d.mu.Unlock()

	d.logger.Debug("search applied",
		logger.Component("dashboard"),
		slog.String("query", query),
	)
	if d.onApply != nil {
		d.onApply(query, d.Visible())
	}
}
