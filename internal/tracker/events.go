package tracker

// Event names published over the EventPublisher seam.
const (
	EventRecordCreated   = "record.created"
	EventRecordSubmitted = "record.submitted"
	EventLookupMissed    = "lookup.missed"
)

// Event represents a tracker lifecycle event.
// Minimal and stable: name + event type + record id.
type Event struct {
	Name string
	Type string
	ID   string
}

// EventPublisher receives events from the tracker. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
