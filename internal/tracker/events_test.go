package tracker

import (
	"testing"
)

func TestPublisherSeesLifecycleEvents(t *testing.T) {
	pub := NewMemoryPublisher()
	tr, _ := newTestTracker(t, Config{Publisher: pub})
	rec := tr.Create("click")
	tr.Get("click", "missing")
	tr.Submit("click", nil, rec.ID)

	evs := pub.Events()
	if len(evs) != 3 {
		t.Fatalf("expected 3 events got %d: %+v", len(evs), evs)
	}
	if evs[0].Name != EventRecordCreated || evs[0].Type != "click" || evs[0].ID != rec.ID {
		t.Fatalf("created event wrong: %+v", evs[0])
	}
	if evs[1].Name != EventLookupMissed || evs[1].ID != "missing" {
		t.Fatalf("miss event wrong: %+v", evs[1])
	}
	if evs[2].Name != EventRecordSubmitted || evs[2].ID != rec.ID {
		t.Fatalf("submitted event wrong: %+v", evs[2])
	}
}

func TestBulkSubmitPublishesPerRecord(t *testing.T) {
	pub := NewMemoryPublisher()
	tr, _ := newTestTracker(t, Config{Publisher: pub})
	tr.Create("click")
	tr.Create("click")
	tr.Submit("click", nil, nil)
	submitted := 0
	for _, e := range pub.Events() {
		if e.Name == EventRecordSubmitted {
			submitted++
		}
	}
	if submitted != 2 {
		t.Fatalf("expected 2 submitted events got %d", submitted)
	}
}

func TestMemoryPublisherEventsReturnsCopy(t *testing.T) {
	pub := NewMemoryPublisher()
	pub.Publish(Event{Name: EventRecordCreated, Type: "a", ID: "1"})
	out := pub.Events()
	out[0].ID = "mutated"
	if pub.Events()[0].ID != "1" {
		t.Fatalf("internal events mutated through returned copy")
	}
}
