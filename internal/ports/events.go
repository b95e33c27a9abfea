package ports

import "context"

const (
	// EventPasswordGenerated is emitted after a password replaces the previous one.
	EventPasswordGenerated = "password.generated"
	// EventPasswordWeak is emitted when a generate request is flagged as weak.
	EventPasswordWeak = "password.weak"
	// EventPasswordCopied is emitted after the password reaches the clipboard.
	EventPasswordCopied = "password.copied"
	// EventClipboardFailed is emitted when a clipboard write fails.
	EventClipboardFailed = "clipboard.failed"
	// EventOptionsChanged is emitted when the length or a character class toggle changes.
	EventOptionsChanged = "options.changed"
)

// DomainEvent represents a significant occurrence in the generator. Payloads
// describe the request (length, classes, score) and never carry the password.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after all handlers ran.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned so
// publishers can log them and continue with remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}

// Event is a DomainEvent carrying a field map payload.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// NewEvent builds an Event from alternating key/value pairs.
func NewEvent(eventType string, kv ...interface{}) Event {
	fields := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return Event{Type: eventType, Fields: fields}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }
