package dashboard

import (
	"fmt"
	"sync"
)

// View is the layout of the resume list.
type View string

const (
	ViewGrid View = "grid"
	ViewList View = "list"
)

// ActiveClass marks the selected view button.
const ActiveClass = "view-toggle-active"

// ViewToggle keeps exactly one view active. Grid is active initially.
type ViewToggle struct {
	mu     sync.RWMutex
	active View
}

func NewViewToggle() *ViewToggle {
	return &ViewToggle{active: ViewGrid}
}

// Select activates v. Unknown views are rejected with ErrUnknownView.
func (t *ViewToggle) Select(v View) error {
	if v != ViewGrid && v != ViewList {
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	t.mu.Lock()
	t.active = v
	t.mu.Unlock()
	return nil
}

func (t *ViewToggle) Active() View {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// ButtonClass returns ActiveClass for the active view's button and "" otherwise.
func (t *ViewToggle) ButtonClass(v View) string {
	if t.Active() == v {
		return ActiveClass
	}
	return ""
}
