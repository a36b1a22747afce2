package replay

import (
	"github.com/rs/zerolog"

	"evtrack/internal/diag"
	"evtrack/internal/registry"
	"evtrack/internal/tracker"
	"evtrack/pkg/types"
)

// Summary reports what a run did.
type Summary struct {
	// Created counts records opened per event type.
	Created map[string]int
	// Submitted counts handler dispatches per event type.
	Submitted map[string]int
	// Misses counts failed lookups (get or targeted submit).
	Misses int
}

// Runner executes scripts against a Tracker it owns. One Runner is one
// session; build a fresh one per script.
type Runner struct {
	log        zerolog.Logger
	kinds      []types.EventKind
	tr         *tracker.Tracker
	lastByType map[string]string
	sum        Summary
}

// countingPublisher forwards lifecycle events to next (when set) and counts
// lookup misses for the summary.
type countingPublisher struct {
	r    *Runner
	next tracker.EventPublisher
}

func (p *countingPublisher) Publish(e tracker.Event) {
	if e.Name == tracker.EventLookupMissed {
		p.r.sum.Misses++
	}
	if p.next != nil {
		p.next.Publish(e)
	}
}

// NewRunner wires a Tracker with logging callbacks. kinds may be nil (no
// declaration check); pub may be nil (no extra publisher).
func NewRunner(log zerolog.Logger, kinds []types.EventKind, pub tracker.EventPublisher) *Runner {
	r := &Runner{
		log:        log,
		kinds:      kinds,
		lastByType: make(map[string]string),
		sum: Summary{
			Created:   make(map[string]int),
			Submitted: make(map[string]int),
		},
	}
	r.tr = tracker.NewWithConfig(tracker.Config{
		Diag:      diag.NewZerolog(log),
		Publisher: &countingPublisher{r: r, next: pub},
		OnCreate: func(rec types.Record) {
			log.Debug().Str("type", rec.Type).Str("id", rec.ID).Msg("record created")
		},
		OnSubmit: func(rec types.SubmittedRecord) {
			r.sum.Submitted[rec.Type]++
			log.Info().
				Str("type", rec.Type).
				Str("id", rec.ID).
				Int64("elapsed_ms", rec.SubmittedAt-rec.CreatedAt).
				Interface("data", rec.Data).
				Msg("record submitted")
		},
	})
	return r
}

// Run executes every operation in order and returns the summary.
func (r *Runner) Run(s Script) Summary {
	for _, op := range s.Ops {
		switch op.Op {
		case "create":
			if r.kinds != nil && !registry.Declared(r.kinds, op.Type) {
				r.log.Warn().Str("type", op.Type).Msg("event kind not declared")
			}
			rec := r.tr.Create(op.Type)
			r.lastByType[op.Type] = rec.ID
			r.sum.Created[op.Type]++
		case "submit":
			r.tr.Submit(op.Type, op.Data, r.resolve(op))
		case "get":
			r.tr.Get(op.Type, op.ID)
		}
	}
	return r.sum
}

// resolve maps a script target to a Submit target. "last" with no prior
// create falls through to bulk mode, mirroring the tracker's own treatment
// of unusable targets.
func (r *Runner) resolve(op Op) any {
	switch op.Target {
	case "", "all":
		return nil
	case "last":
		return r.lastByType[op.Type]
	default:
		return op.Target
	}
}
