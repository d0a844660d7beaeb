package queue

import (
	"github.com/telvenn/hookbatch/pkg/condition"
	"github.com/telvenn/hookbatch/pkg/logger"
	"github.com/telvenn/hookbatch/pkg/registry"
	"github.com/telvenn/hookbatch/pkg/results"
)

// commitState tracks the queue lifecycle. A queue commits exactly once; a
// deferred queue additionally executes exactly once, when the host
// dispatches the binding hook.
type commitState int

const (
	statePending commitState = iota
	stateCommittedImmediate
	stateCommittedDeferred
	stateExecuted
)

// DeferredBinding names the host hook and priority at which a deferred
// queue executes.
type DeferredBinding struct {
	Hook     string
	Priority int
}

// Queue holds queued modifications against a host registry and applies them
// on commit. It owns its entries and outcomes; the registry is only
// referenced, never owned. The queue assumes the host's cooperative
// single-threaded dispatch model and performs no locking.
type Queue struct {
	reg             registry.Registry
	entries         []Entry
	globalCondition condition.Condition
	defaultPriority int
	deferred        *DeferredBinding
	state           commitState
	executed        bool
	tracker         *results.Tracker
	logger          logger.Logger
}

// Option configures a Queue at construction.
type Option func(*Queue)

// WithLogger sets the logger used for progress messages.
func WithLogger(l logger.Logger) Option {
	return func(q *Queue) {
		q.logger = l
	}
}

// WithDefaultPriority sets the priority applied to entries that never set
// one.
func WithDefaultPriority(priority int) Option {
	return func(q *Queue) {
		q.defaultPriority = priority
	}
}

// WithGlobalCondition gates the whole batch on a predicate. A false
// predicate skips every entry without counting as a failure.
func WithGlobalCondition(c condition.Condition) Option {
	return func(q *Queue) {
		q.globalCondition = c
	}
}

// WithDeferredBinding postpones execution until the host dispatches the
// binding hook.
func WithDeferredBinding(binding DeferredBinding) Option {
	return func(q *Queue) {
		b := binding
		q.deferred = &b
	}
}

// New creates a queue bound to the host registry.
func New(reg registry.Registry, opts ...Option) (*Queue, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	q := &Queue{
		reg:             reg,
		defaultPriority: DefaultPriority,
		tracker:         results.NewTracker(),
		logger:          logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// Add appends an entry to the batch. Entries are processed in insertion
// order at commit time.
func (q *Queue) Add(e Entry) error {
	if q.state != statePending {
		return ErrAlreadyCommitted
	}
	if e.Hook == "" {
		return ErrEmptyHookName
	}
	if strategyFor(e.Operation) == nil {
		return ErrUnknownOperation
	}

	q.entries = append(q.entries, e)
	return nil
}

// SetGlobalCondition replaces the batch-wide predicate. Allowed any number
// of times before commit.
func (q *Queue) SetGlobalCondition(c condition.Condition) error {
	if q.state != statePending {
		return ErrAlreadyCommitted
	}
	q.globalCondition = c
	return nil
}

// SetDefaultPriority replaces the priority applied to entries without an
// explicit one.
func (q *Queue) SetDefaultPriority(priority int) error {
	if q.state != statePending {
		return ErrAlreadyCommitted
	}
	q.defaultPriority = priority
	return nil
}

// SetDeferredBinding replaces the deferred-execution binding.
func (q *Queue) SetDeferredBinding(binding DeferredBinding) error {
	if q.state != statePending {
		return ErrAlreadyCommitted
	}
	b := binding
	q.deferred = &b
	return nil
}

// Commit applies the batch. With a deferred binding set, the queue registers
// its own execution as a callback at the binding and returns empty outcomes;
// the host populates them later when it dispatches the binding hook. Without
// a binding, execution is synchronous and the outcomes are returned in the
// same call.
//
// A second Commit after the queue is committed is an idempotent no-op that
// returns the already-accumulated outcomes; effects are never re-applied.
func (q *Queue) Commit() ([]results.Outcome, error) {
	if q.state != statePending {
		return q.tracker.Outcomes(), nil
	}

	if q.deferred != nil {
		binding := *q.deferred
		q.state = stateCommittedDeferred
		q.reg.RegisterCallback(binding.Hook, registry.Callback{
			Method: "hookbatch-deferred-commit",
			Ref:    q,
			Invoke: func(_ ...interface{}) interface{} {
				q.performOperations()
				return nil
			},
		}, binding.Priority)
		q.logger.Logf("queue: deferred %d entries to hook %q priority %d",
			len(q.entries), binding.Hook, binding.Priority)
		return q.tracker.Outcomes(), nil
	}

	q.state = stateCommittedImmediate
	q.performOperations()
	return q.tracker.Outcomes(), nil
}

// performOperations evaluates conditions and applies each entry in
// insertion order. It runs at most once per queue.
func (q *Queue) performOperations() {
	if q.executed {
		return
	}
	q.executed = true
	if q.state == stateCommittedDeferred {
		q.state = stateExecuted
	}

	if !condition.Evaluate(q.globalCondition) {
		q.logger.Logf("queue: global condition false, skipping %d entries", len(q.entries))
		return
	}

	for i := range q.entries {
		e := q.resolved(q.entries[i])

		if !condition.Evaluate(e.Condition) {
			q.logger.Logf("queue: entry %s skipped by condition (hook %q)", e.ID, e.Hook)
			continue
		}

		if strategyFor(e.Operation).apply(q.reg, e) {
			q.tracker.Record(results.Outcome{
				EntryID:   e.ID,
				Hook:      e.Hook,
				Priority:  e.Priority,
				Operation: string(e.Operation),
				Succeeded: true,
			})
			q.logger.Logf("queue: applied %s at hook %q priority %d", e.Operation, e.Hook, e.Priority)
		} else {
			q.logger.Logf("queue: %s matched nothing at hook %q priority %d", e.Operation, e.Hook, e.Priority)
		}
	}
}

// resolved applies the queue default priority to entries that never set
// one.
func (q *Queue) resolved(e Entry) Entry {
	if !e.hasPriority {
		e.Priority = q.defaultPriority
	}
	return e
}

// Results returns the accumulated outcomes. For a deferred queue the slice
// stays empty until the host dispatches the binding hook.
func (q *Queue) Results() []results.Outcome {
	return q.tracker.Outcomes()
}

// VerifyResults reports whether every queued entry both passed its
// conditions and succeeded. An entry skipped by a condition, or one whose
// operation matched nothing, leaves verification false.
func (q *Queue) VerifyResults() bool {
	return q.tracker.Complete(len(q.entries))
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Close commits the queue best-effort if it is still pending. Finalizer
// timing is not guaranteed in Go, so the safety net is this explicit call;
// callers should defer Close right after New. Close is idempotent.
func (q *Queue) Close() error {
	if q.state != statePending {
		return nil
	}
	_, err := q.Commit()
	return err
}
