package tracker

import (
	"time"

	"evtrack/pkg/types"
)

// dispatcher is the onSubmit variant fixed at construction: one global
// handler for every type, or a per-type table. Resolved by a single branch
// per dispatch.
type dispatcher struct {
	global SubmitHandler
	byType map[string]SubmitHandler
}

func (d dispatcher) call(rec types.SubmittedRecord) {
	if d.global != nil {
		d.global(rec)
		return
	}
	if h, ok := d.byType[rec.Type]; ok {
		h(rec)
	}
}

// resolveTarget extracts a record id from a Submit target. Accepted shapes:
// a bare id string, a Record or *Record (its ID field is used), or nil.
// Anything that yields no usable id selects bulk mode.
func resolveTarget(target any) string {
	switch v := target.(type) {
	case string:
		return v
	case types.Record:
		return v.ID
	case *types.Record:
		if v == nil {
			return ""
		}
		return v.ID
	case types.SubmittedRecord:
		return v.ID
	default:
		return ""
	}
}

// Submit attaches data to pending records of eventType, dispatches them, and
// removes them from storage. target picks the record: an id string or a
// record value targets one record; nil (or anything without a usable id)
// submits every pending record of the type. Submitting over an empty
// partition in bulk mode is a silent no-op; a single-mode miss warns and
// leaves storage untouched. The record is removed whether or not a handler
// reacted to it.
func (t *Tracker) Submit(eventType string, data any, target any) {
	part, _ := t.partition(eventType)
	id := resolveTarget(target)
	if id == "" {
		for rid, rec := range part {
			t.dispatchRecord(rec, data)
			delete(part, rid)
		}
		return
	}
	rec, ok := part[id]
	if !ok {
		t.diag.Warnf("Record with id %s not found for type %s", id, eventType)
		t.pub.Publish(Event{Name: EventLookupMissed, Type: eventType, ID: id})
		return
	}
	t.dispatchRecord(rec, data)
	delete(part, id)
}

// SubmitAll submits every pending record of eventType.
func (t *Tracker) SubmitAll(eventType string, data any) {
	t.Submit(eventType, data, nil)
}

func (t *Tracker) dispatchRecord(rec types.Record, data any) {
	t.dispatch.call(types.SubmittedRecord{
		ID:          rec.ID,
		Type:        rec.Type,
		CreatedAt:   rec.CreatedAt,
		SubmittedAt: time.Now().UnixMilli(),
		Data:        data,
	})
	t.pub.Publish(Event{Name: EventRecordSubmitted, Type: rec.Type, ID: rec.ID})
}
