package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/passgen/internal/ports"
)

// AnyEvent subscribes a handler to every event type.
const AnyEvent = "*"

// LoggingPublisher writes each generator event as one log entry and then runs
// the matching subscribers in registration order. Events that signal a problem
// (weak password, clipboard failure) log at warn; option changes at debug.
type LoggingPublisher struct {
	log ports.Logger

	mu       sync.Mutex
	nextID   int
	handlers []registration
}

type registration struct {
	id        int
	eventType string
	handler   ports.EventHandler
}

// NewLoggingPublisher returns a publisher that logs through log.
func NewLoggingPublisher(log ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{log: log}
}

// Publish logs event and dispatches it. Handler errors are logged and do not
// stop delivery to the remaining handlers.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}
	kind := event.EventType()

	if p.log != nil {
		fields := append([]interface{}{"event_type", kind}, payloadFields(event.Payload())...)
		switch kind {
		case ports.EventPasswordWeak, ports.EventClipboardFailed:
			p.log.Warn(ctx, "generator event", fields...)
		case ports.EventOptionsChanged:
			p.log.Debug(ctx, "generator event", fields...)
		default:
			p.log.Info(ctx, "generator event", fields...)
		}
	}

	for _, r := range p.matching(kind) {
		if err := r.handler(ctx, event); err != nil && p.log != nil {
			p.log.Warn(ctx, "event handler failed", "event_type", kind, "error", err)
		}
	}
	return nil
}

// Subscribe registers handler for eventType, or for all events with AnyEvent.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return cancelFunc(nil), nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.handlers = append(p.handlers, registration{id: id, eventType: eventType, handler: handler})
	p.mu.Unlock()

	var once sync.Once
	return cancelFunc(func() { once.Do(func() { p.remove(id) }) }), nil
}

func (p *LoggingPublisher) matching(kind string) []registration {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []registration
	for _, r := range p.handlers {
		if r.eventType == kind || r.eventType == AnyEvent {
			out = append(out, r)
		}
	}
	return out
}

func (p *LoggingPublisher) remove(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, r := range p.handlers {
		if r.id == id {
			p.handlers = append(p.handlers[:i], p.handlers[i+1:]...)
			return
		}
	}
}

// payloadFields flattens a map payload into sorted key/value pairs.
func payloadFields(payload interface{}) []interface{} {
	switch v := payload.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]interface{}, 0, len(v)*2)
		for _, k := range keys {
			out = append(out, k, v[k])
		}
		return out
	default:
		return []interface{}{"payload", v}
	}
}

type cancelFunc func()

func (c cancelFunc) Unsubscribe() {
	if c != nil {
		c()
	}
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)
