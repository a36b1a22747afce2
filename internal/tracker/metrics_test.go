package tracker

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsPublisherCountsByType(t *testing.T) {
	reg := prometheus.NewRegistry()
	pub := NewMetricsPublisher(reg)
	tr, _ := newTestTracker(t, Config{Publisher: pub})

	rec := tr.Create("click")
	tr.Create("view")
	tr.Submit("click", nil, rec.ID)
	tr.Get("view", "missing")

	if got := testutil.ToFloat64(pub.created.WithLabelValues("click")); got != 1 {
		t.Fatalf("created{click}=%v want 1", got)
	}
	if got := testutil.ToFloat64(pub.created.WithLabelValues("view")); got != 1 {
		t.Fatalf("created{view}=%v want 1", got)
	}
	if got := testutil.ToFloat64(pub.submitted.WithLabelValues("click")); got != 1 {
		t.Fatalf("submitted{click}=%v want 1", got)
	}
	if got := testutil.ToFloat64(pub.misses.WithLabelValues("view")); got != 1 {
		t.Fatalf("misses{view}=%v want 1", got)
	}
}

func TestMetricsPublisherNilRegistererSkipsRegistration(t *testing.T) {
	pub := NewMetricsPublisher(nil)
	pub.Publish(Event{Name: EventRecordCreated, Type: "click"})
	if got := testutil.ToFloat64(pub.created.WithLabelValues("click")); got != 1 {
		t.Fatalf("created{click}=%v want 1", got)
	}
}
