// Package pointer provides screen-wide mouse listeners with scoped lifetimes.
//
// A Document plays the role of a page-level event target: a component that
// needs to observe the pointer outside its own bounds subscribes, and the
// returned Subscription is the only way to stop receiving events. The
// Document is owned by the bubbletea event loop and is not safe for
// concurrent use.
package pointer

import tea "github.com/charmbracelet/bubbletea"

// Handler receives every mouse message dispatched to the document.
type Handler func(tea.MouseMsg)

// Subscription is a scoped listener registration.
type Subscription interface {
	// Unsubscribe removes the listener. Repeated calls are no-ops.
	Unsubscribe()
	// Active reports whether the listener is still registered.
	Active() bool
}

// Document is a registry of screen-wide mouse listeners.
type Document struct {
	nextID    int
	listeners []listener
}

type listener struct {
	id      int
	handler Handler
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Subscribe registers handler for all subsequent dispatches.
func (d *Document) Subscribe(handler Handler) Subscription {
	if d == nil || handler == nil {
		return &subscription{}
	}
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, handler: handler})
	return &subscription{doc: d, id: id, active: true}
}

// Dispatch delivers msg to every registered listener in registration order.
// Listeners added or removed during dispatch take effect on the next call.
func (d *Document) Dispatch(msg tea.MouseMsg) {
	if d == nil || len(d.listeners) == 0 {
		return
	}
	snapshot := append([]listener(nil), d.listeners...)
	for _, l := range snapshot {
		l.handler(msg)
	}
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int {
	if d == nil {
		return 0
	}
	return len(d.listeners)
}

func (d *Document) remove(id int) {
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

type subscription struct {
	doc    *Document
	id     int
	active bool
}

func (s *subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	s.doc.remove(s.id)
}

func (s *subscription) Active() bool {
	return s != nil && s.active
}
