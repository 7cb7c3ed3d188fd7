package pkgmvc

import (
	"slices"
	"sync"
)

const (
	// PriorityDefault is used by the generic fallback strategies.
	PriorityDefault = 1
)

// Listener reacts to a dispatch error event.
type Listener func(e *Event)

type registration struct {
	fn       Listener
	priority int
	seq      int
}

// EventManager runs dispatch error listeners in descending priority order.
// Listeners with equal priority run in attach order.
//
// Attach is expected to happen during bootstrap; Trigger is safe to call from
// concurrent requests.
type EventManager struct {
	mu        sync.RWMutex
	listeners []registration
	seq       int
}

// NewEventManager returns an empty manager.
func NewEventManager() *EventManager {
	return &EventManager{}
}

// Attach registers fn with the given priority.
func (m *EventManager) Attach(fn Listener, priority int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	next := append(slices.Clone(m.listeners), registration{fn: fn, priority: priority, seq: m.seq})
	slices.SortStableFunc(next, func(a, b registration) int {
		if a.priority != b.priority {
			return b.priority - a.priority
		}
		return a.seq - b.seq
	})
	m.listeners = next
}

// Len returns the number of attached listeners.
func (m *EventManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.listeners)
}

// Trigger runs every listener against e.
func (m *EventManager) Trigger(e *Event) {
	m.mu.RLock()
	listeners := m.listeners
	m.mu.RUnlock()

	for _, l := range listeners {
		l.fn(e)
	}
}
