// Package tracker owns the record lifecycle for in-flight events: a record is
// opened when an event begins and consumed when its data is submitted. It is
// structured into small files by concern:
//
//   - tracker.go: core Tracker type, constructors, Create and Get.
//   - config.go: Config bundle and how defaults are applied.
//   - submit.go: target resolution, bulk vs single submission, dispatch.
//   - events.go: lifecycle Event and the EventPublisher seam.
//   - eventpub_memory.go: in-memory publisher for tests.
//   - metrics.go: prometheus-backed publisher.
//
// The Tracker is synchronous and single-caller: no locking, no background
// work, no I/O. Callers needing concurrent access must synchronize outside.
// Lookup failures are reported through the diag sink, never as errors;
// panics from caller-supplied callbacks propagate unchanged.
package tracker
