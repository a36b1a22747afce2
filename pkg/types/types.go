package types

// Record is an open tracking entry: an event that has started but has not yet
// been finalized with data. All fields are set at creation and never change.
type Record struct {
	// Opaque unique identifier, unique within the record's type partition.
	ID string `json:"id"`
	// Event kind this record was created under.
	Type string `json:"type"`
	// Creation time in milliseconds since the Unix epoch.
	CreatedAt int64 `json:"created_at_ms"`
}

// SubmittedRecord is the value handed to submit handlers. It is derived at
// dispatch time and never stored.
type SubmittedRecord struct {
	// Identifier of the record being submitted.
	ID string `json:"id"`
	// Event kind of the record.
	Type string `json:"type"`
	// Creation time in milliseconds since the Unix epoch.
	CreatedAt int64 `json:"created_at_ms"`
	// Submission time in milliseconds since the Unix epoch.
	SubmittedAt int64 `json:"submitted_at_ms"`
	// Caller-supplied payload; its shape is a convention of the event kind.
	Data any `json:"data"`
}

// EventKind declares an event type an application tracks. Kinds are loaded
// from declaration files by the registry; the tracker core itself accepts any
// type string.
type EventKind struct {
	// Kind name used as the tracker's type key.
	Name string `json:"name" yaml:"name"`
	// Free-form description of what the event measures.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
