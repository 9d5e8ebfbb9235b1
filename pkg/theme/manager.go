package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rojgarpatra/uikit/pkg/events"
	"github.com/rojgarpatra/uikit/pkg/logger"
)

// ToggleTarget is the element ID of the theme toggle button.
const ToggleTarget = "theme-toggle"

// Applier sets the theme on the document, e.g. its data-theme attribute.
type Applier func(Theme)

// Option configures a Manager.
type Option func(*Manager)

func WithApplier(a Applier) Option {
	return func(m *Manager) {
		if a != nil {
			m.apply = a
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager reads and changes the theme preference held by a Store and
// applies every change. It is passed explicitly to whoever needs it.
type Manager struct {
	store  Store
	apply  Applier
	logger *slog.Logger

	// mu serialises read-modify-write cycles of Toggle.
	mu sync.Mutex
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		apply:  func(Theme) {},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init applies the stored theme, or Default when none is stored.
func (m *Manager) Init(ctx context.Context) (Theme, error) {
	t, err := m.Current(ctx)
	if err != nil {
		return "", err
	}
	m.apply(t)
	return t, nil
}

// Current returns the stored theme. A missing or unrecognised value is Default.
func (m *Manager) Current(ctx context.Context) (Theme, error) {
	raw, err := m.raw(ctx)
	if err != nil {
		return "", err
	}
	if !raw.Valid() {
		m.logger.WarnContext(ctx, "ignoring unrecognised stored theme",
			logger.Component("theme"),
			logger.Theme(string(raw)),
		)
		return Default, nil
	}
	return raw, nil
}

// Toggle switches Light to Dark and any other stored value to Light, then
// saves and applies the result.
func (m *Manager) Toggle(ctx context.Context) (Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := m.raw(ctx)
	if err != nil {
		return "", err
	}
	next := raw.Next()
	if err := m.save(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Set saves and applies t. Invalid themes are rejected with ErrInvalidTheme.
func (m *Manager) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(ctx, t)
}

// Follow applies changes made to the store by other processes, when the
// store supports watching. It reports whether watching started.
func (m *Manager) Follow(ctx context.Context) (bool, error) {
	w, ok := m.store.(Watcher)
	if !ok {
		return false, nil
	}
	err := w.Watch(ctx, func(t Theme) {
		if !t.Valid() {
			t = Default
		}
		m.logger.InfoContext(ctx, "theme changed externally",
			logger.Component("theme"),
			logger.Theme(string(t)),
		)
		m.apply(t)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Bind toggles the theme whenever the toggle button is clicked.
func (m *Manager) Bind(ctx context.Context, bus events.Bus) (stop func()) {
	return events.Attach(ctx, bus, func(ctx context.Context, e events.Event) {
		if e.Target != ToggleTarget {
			return
		}
		if _, err := m.Toggle(ctx); err != nil {
			m.logger.ErrorContext(ctx, "theme toggle failed",
				logger.Component("theme"),
				logger.Error(err),
			)
		}
	}, events.Click)
}

func (m *Manager) raw(ctx context.Context) (Theme, error) {
	t, err := m.store.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return Default, nil
	}
	return t, err
}

func (m *Manager) save(ctx context.Context, t Theme) error {
	if err := m.store.Save(ctx, t); err != nil {
		return err
	}
	m.apply(t)
	m.logger.DebugContext(ctx, "theme applied", logger.Component("theme"), logger.Theme(string(t)))
	return nil
}
