package tracker

import (
	"evtrack/internal/diag"
	"evtrack/internal/idgen"
	"evtrack/pkg/types"
)

// SubmitHandler receives a record at submission time.
type SubmitHandler func(types.SubmittedRecord)

// Config bundles the Tracker's optional collaborators. The zero value is
// usable: default id generator, stderr diagnostics, no callbacks.
type Config struct {
	// GenerateID produces record ids. Defaults to idgen.New. A panicking
	// generator aborts Create.
	GenerateID func() string
	// OnCreate is invoked with every newly created record, after it is
	// stored. Panics propagate to the Create caller.
	OnCreate func(types.Record)
	// OnSubmit handles every submitted record regardless of type. Exactly
	// one of OnSubmit and OnSubmitByType is active; when both are set the
	// global handler wins and the table is ignored.
	OnSubmit SubmitHandler
	// OnSubmitByType routes submissions by event type. A submitted record
	// whose type has no entry is consumed without any handler firing.
	OnSubmitByType map[string]SubmitHandler
	// Diag receives lookup-failure warnings. Defaults to diag.Default().
	Diag diag.Sink
	// Publisher observes lifecycle events. Defaults to a no-op.
	Publisher EventPublisher
}

// New returns a Tracker with all defaults.
func New() *Tracker { return NewWithConfig(Config{}) }

// NewWithConfig builds a Tracker, filling in defaults for any collaborator
// left unset.
func NewWithConfig(cfg Config) *Tracker {
	t := &Tracker{
		records:    make(map[string]map[string]types.Record),
		generateID: cfg.GenerateID,
		onCreate:   cfg.OnCreate,
		diag:       cfg.Diag,
		pub:        cfg.Publisher,
	}
	if cfg.OnSubmit != nil {
		t.dispatch = dispatcher{global: cfg.OnSubmit}
	} else {
		t.dispatch = dispatcher{byType: cfg.OnSubmitByType}
	}
	if t.generateID == nil {
		t.generateID = idgen.New
	}
	if t.diag == nil {
		t.diag = diag.Default()
	}
	if t.pub == nil {
		t.pub = noopPublisher{}
	}
	return t
}
