// Package results accumulates per-entry outcomes for a committed batch.
package results

import "github.com/google/uuid"

// Outcome records the processing of one queued entry.
type Outcome struct {
	// EntryID identifies the queued entry this outcome belongs to.
	EntryID uuid.UUID

	// Hook is the host extension point the entry targeted.
	Hook string

	// Priority is the ordering slot the operation applied at.
	Priority int

	// Operation names the effect that was applied.
	Operation string

	// Succeeded reports whether the operation strategy succeeded.
	Succeeded bool
}

// Tracker accumulates outcomes in processing order.
type Tracker struct {
	outcomes []Outcome
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends an outcome.
func (t *Tracker) Record(o Outcome) {
	t.outcomes = append(t.outcomes, o)
}

// Outcomes returns a copy of the accumulated outcomes in record order.
func (t *Tracker) Outcomes() []Outcome {
	out := make([]Outcome, len(t.outcomes))
	copy(out, t.outcomes)
	return out
}

// Count returns the number of recorded outcomes.
func (t *Tracker) Count() int {
	return len(t.outcomes)
}

// Complete reports whether every one of the expected entries produced an
// outcome. An entry skipped by a condition leaves the tracker incomplete.
func (t *Tracker) Complete(expected int) bool {
	return len(t.outcomes) == expected
}
