package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// Tally counts events by type for the lifetime of a session.
type Tally struct {
	mu     sync.Mutex
	counts map[string]int
	sub    ports.Subscription
}

// Attach subscribes a new Tally to every event on pub.
func Attach(pub ports.EventPublisher) (*Tally, error) {
	t := &Tally{counts: make(map[string]int)}
	sub, err := pub.Subscribe(AnyEvent, func(_ context.Context, e ports.DomainEvent) error {
		t.mu.Lock()
		t.counts[e.EventType()]++
		t.mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	t.sub = sub
	return t, nil
}

// Count returns how many events of eventType were seen.
func (t *Tally) Count(eventType string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[eventType]
}

// Fields returns the session counters as log key/value pairs.
func (t *Tally) Fields() []interface{} {
	return []interface{}{
		"generated", t.Count(ports.EventPasswordGenerated),
		"weak", t.Count(ports.EventPasswordWeak),
		"copied", t.Count(ports.EventPasswordCopied),
		"clipboard_failures", t.Count(ports.EventClipboardFailed),
	}
}

// Detach stops counting. Counts remain readable.
func (t *Tally) Detach() {
	if t.sub != nil {
		t.sub.Unsubscribe()
	}
}
