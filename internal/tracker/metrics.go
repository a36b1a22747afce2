package tracker

import "github.com/prometheus/client_golang/prometheus"

// MetricsPublisher counts lifecycle events in prometheus CounterVecs, labeled
// by event type. The tracker ships no scrape endpoint; the embedding
// application exposes the registry it passes in.
type MetricsPublisher struct {
	created   *prometheus.CounterVec
	submitted *prometheus.CounterVec
	misses    *prometheus.CounterVec
}

// NewMetricsPublisher builds the counters and registers them with reg when it
// is non-nil. Registering the same counters twice on one registry panics, per
// prometheus convention.
func NewMetricsPublisher(reg prometheus.Registerer) *MetricsPublisher {
	p := &MetricsPublisher{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evtrack_records_created_total",
			Help: "Tracking records created, by event type.",
		}, []string{"type"}),
		submitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evtrack_records_submitted_total",
			Help: "Tracking records submitted and consumed, by event type.",
		}, []string{"type"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "evtrack_lookup_misses_total",
			Help: "Failed record lookups (missing type or id), by event type.",
		}, []string{"type"}),
	}
	if reg != nil {
		reg.MustRegister(p.created, p.submitted, p.misses)
	}
	return p
}

func (p *MetricsPublisher) Publish(e Event) {
	switch e.Name {
	case EventRecordCreated:
		p.created.WithLabelValues(e.Type).Inc()
	case EventRecordSubmitted:
		p.submitted.WithLabelValues(e.Type).Inc()
	case EventLookupMissed:
		p.misses.WithLabelValues(e.Type).Inc()
	}
}
