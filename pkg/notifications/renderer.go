package notifications

import (
	"context"
	"slices"
	"sync"
)

// Renderer draws notifications. Implementations must be safe for concurrent
// use, since fade and removal run on timer goroutines.
type Renderer interface {
	Render(ctx context.Context, n Notification) error
	// Fade starts the opacity transition of a rendered notification.
	Fade(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// Op is one call recorded by MemoryRenderer.
type Op struct {
	Kind string // render, fade or remove
	ID   string
}

// MemoryRenderer keeps rendered notifications in memory.
type MemoryRenderer struct {
	mu      sync.RWMutex
	visible map[string]Notification
	ops     []Op
}

func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{visible: make(map[string]Notification)}
}

func (r *MemoryRenderer) Render(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible[n.ID] = n
	r.ops = append(r.ops, Op{Kind: "render", ID: n.ID})
	return nil
}

func (r *MemoryRenderer) Fade(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.visible[id]; ok {
		n.Fading = true
		r.visible[id] = n
	}
	r.ops = append(r.ops, Op{Kind: "fade", ID: id})
	return nil
}

func (r *MemoryRenderer) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.visible, id)
	r.ops = append(r.ops, Op{Kind: "remove", ID: id})
	return nil
}

// Visible returns the notification with the given ID while it is on screen.
func (r *MemoryRenderer) Visible(id string) (Notification, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.visible[id]
	return n, ok
}

// Ops returns every recorded call in order.
func (r *MemoryRenderer) Ops() []Op {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ops)
}
