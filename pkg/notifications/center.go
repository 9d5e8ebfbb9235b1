package notifications

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
)

// CloseTargetPrefix prefixes the event target of a notification's close
// button: "notification-close:<id>".
const CloseTargetPrefix = "notification-close:"

type entry struct {
	n     Notification
	seq   uint64
	timer *time.Timer
}

// Center shows notifications and dismisses them after Config.DismissAfter.
// Dismissal fades the notification for Config.FadeDuration before removing it.
type Center struct {
	renderer Renderer
	cfg      Config
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	active map[string]*entry
	seq    uint64
	closed bool
}

// CenterOption configures a Center.
type CenterOption func(*Center)

func WithConfig(cfg Config) CenterOption {
	return func(c *Center) { c.cfg = cfg }
}

func WithLogger(l *slog.Logger) CenterOption {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the source of CreatedAt timestamps.
func WithClock(now func() time.Time) CenterOption {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCenter creates a Center drawing through r. A nil renderer gets a MemoryRenderer.
func NewCenter(r Renderer, opts ...CenterOption) *Center {
	if r == nil {
		r = NewMemoryRenderer()
	}
	c := &Center{
		renderer: r,
		cfg:      DefaultConfig(),
		logger:   slog.Default(),
		now:      time.Now,
		active:   make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show renders message and schedules its dismissal.
func (c *Center) Show(ctx context.Context, message string, t Type) (Notification, error) {
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Notification{}, ErrCenterClosed
	}

	n := Notification{
		ID:        uuid.New().String(),
		Type:      ParseType(string(t)),
		Message:   message,
		CreatedAt: c.now(),
	}
	if err := c.renderer.Render(ctx, n); err != nil {
		return Notification{}, errors.Join(ErrRenderFailed, err)
	}

	c.seq++
	e := &entry{n: n, seq: c.seq}
	bg := context.WithoutCancel(ctx)
	e.timer = time.AfterFunc(c.cfg.DismissAfter, func() {
		if err := c.Dismiss(bg, n.ID); err != nil && !errors.Is(err, ErrNotificationNotFound) {
			c.logger.WarnContext(bg, "auto-dismiss failed",
				logger.Component("notifications"),
				logger.NotificationID(n.ID),
				logger.Error(err),
			)
		}
	})
	c.active[n.ID] = e

	c.logger.DebugContext(ctx, "notification shown",
		logger.Component("notifications"),
		logger.NotificationID(n.ID),
		slog.String("type", string(n.Type)),
	)
	return n, nil
}

// Dismiss fades the notification and removes it after the fade duration.
// It returns ErrNotificationNotFound if id is unknown or already dismissed.
func (c *Center) Dismiss(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.active[id]
	if !ok || e.n.Fading || c.closed {
		return fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	}
	e.timer.Stop()
	e.n.Fading = true

	if err := c.renderer.Fade(ctx, id); err != nil {
		c.logger.WarnContext(ctx, "fade failed",
			logger.Component("notifications"),
			logger.NotificationID(id),
			logger.Error(err),
		)
	}

	bg := context.WithoutCancel(ctx)
	e.timer = time.AfterFunc(c.cfg.FadeDuration, func() { c.remove(bg, id) })
	return nil
}

// Active returns visible notifications, including fading ones, newest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	entries := make([]*entry, 0, len(c.active))
	for _, e := range c.active {
		entries = append(entries, e)
	}
	c.mu.Unlock()

	slices.SortFunc(entries, func(a, b *entry) int {
		return cmp.Compare(b.seq, a.seq)
	})

	out := make([]Notification, len(entries))
	for i, e := range entries {
		out[i] = e.n
	}
	return out
}

// Close stops every pending timer. Notifications already on screen stay
// where they are. Close is idempotent.
func (c *Center) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	for id, e := range c.active {
		e.timer.Stop()
		delete(c.active, id)
	}
	return nil
}

// Bind dismisses notifications when their close button is clicked.
func (c *Center) Bind(ctx context.Context, bus events.Bus) (stop func()) {
	return events.Attach(ctx, bus, func(ctx context.Context, e events.Event) {
		id, ok := strings.CutPrefix(e.Target, CloseTargetPrefix)
		if !ok {
			return
		}
		if err := c.Dismiss(ctx, id); err != nil {
			c.logger.DebugContext(ctx, "close clicked on inactive notification",
				logger.Component("notifications"),
				logger.NotificationID(id),
			)
		}
	}, events.Click)
}

func (c *Center) remove(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.active[id]; !ok {
		return
	}
	delete(c.active, id)

	if err := c.renderer.Remove(ctx, id); err != nil {
		c.logger.WarnContext(ctx, "remove failed",
			logger.Component("notifications"),
			logger.NotificationID(id),
			logger.Error(err),
		)
	}
}
