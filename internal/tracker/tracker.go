package tracker

import (
	"time"

	"evtrack/internal/diag"
	"evtrack/pkg/types"
)

// Tracker owns all record storage: a two-level map from event type to record
// id to record. Partitions are created on first reference and persist, even
// emptied, for the Tracker's lifetime.
type Tracker struct {
	records    map[string]map[string]types.Record
	generateID func() string
	onCreate   func(types.Record)
	dispatch   dispatcher
	diag       diag.Sink
	pub        EventPublisher
}

// partition returns the map for eventType, creating it if needed. existed
// reports whether the partition was already present; Get uses that to pick
// the right warning.
func (t *Tracker) partition(eventType string) (part map[string]types.Record, existed bool) {
	part, existed = t.records[eventType]
	if !existed {
		part = make(map[string]types.Record)
		t.records[eventType] = part
	}
	return part, existed
}

// Create opens a tracking record for eventType and returns it. The record
// stays stored until a Submit call consumes it.
func (t *Tracker) Create(eventType string) types.Record {
	rec := types.Record{
		ID:        t.generateID(),
		Type:      eventType,
		CreatedAt: time.Now().UnixMilli(),
	}
	part, _ := t.partition(eventType)
	part[rec.ID] = rec
	t.pub.Publish(Event{Name: EventRecordCreated, Type: eventType, ID: rec.ID})
	if t.onCreate != nil {
		t.onCreate(rec)
	}
	return rec
}

// Get returns the stored record without removing it. A miss warns through the
// diag sink and reports ok=false; Get never panics on unknown input.
func (t *Tracker) Get(eventType, id string) (types.Record, bool) {
	part, existed := t.partition(eventType)
	if !existed {
		t.diag.Warnf("No records found for type %s", eventType)
		t.pub.Publish(Event{Name: EventLookupMissed, Type: eventType, ID: id})
		return types.Record{}, false
	}
	rec, ok := part[id]
	if !ok {
		t.diag.Warnf("Record with id %s not found for type %s", id, eventType)
		t.pub.Publish(Event{Name: EventLookupMissed, Type: eventType, ID: id})
		return types.Record{}, false
	}
	return rec, true
}

// Pending reports how many records are currently stored for eventType.
func (t *Tracker) Pending(eventType string) int {
	return len(t.records[eventType])
}
