package batch

import (
	"fmt"
	"sort"

	"github.com/telvenn/hookbatch/pkg/condition"
	"github.com/telvenn/hookbatch/pkg/match"
	"github.com/telvenn/hookbatch/pkg/queue"
	"github.com/telvenn/hookbatch/pkg/registry"
)

// ErrorHandler receives per-entry validation problems and unrecoverable
// construction failures. Per-entry problems never abort the batch; the bad
// entry is dropped and processing continues.
type ErrorHandler func(error)

// StructuredEntry is one explicit batch entry. Exactly one of Remove,
// Constant, or Class+Method must be set.
type StructuredEntry struct {
	Hook      string
	Remove    registry.CallbackRef
	Constant  *bool
	Class     string
	Method    string
	Priority  *int
	Condition condition.Condition
	Match     *match.Options
}

// Simple maps a hook name to either a bool (constant-value override) or a
// registry.Callback (removal of that callback). Any other value type is
// malformed and skipped.
type Simple map[string]interface{}

// Option configures a builder.
type Option func(*builder)

type builder struct {
	errorHandler ErrorHandler
	queueOpts    []queue.Option
}

// WithErrorHandler installs the callback that receives validation and
// construction errors. Without one, errors are silently dropped.
func WithErrorHandler(h ErrorHandler) Option {
	return func(b *builder) {
		b.errorHandler = h
	}
}

// WithQueueOptions forwards options to the constructed queue (logger,
// default priority, global condition, deferred binding).
func WithQueueOptions(opts ...queue.Option) Option {
	return func(b *builder) {
		b.queueOpts = append(b.queueOpts, opts...)
	}
}

func newBuilder(opts ...Option) *builder {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *builder) report(err error) {
	if b.errorHandler != nil {
		b.errorHandler(err)
	}
}

// BuildStructured constructs, fills, and commits a queue from explicit
// entries. Malformed entries are reported to the error handler and skipped.
// The queue is always committed before it is returned. Returns nil if the
// queue itself could not be constructed or committed.
func BuildStructured(reg registry.Registry, entries []StructuredEntry, opts ...Option) *queue.Queue {
	b := newBuilder(opts...)

	q, err := queue.New(reg, b.queueOpts...)
	if err != nil {
		b.report(fmt.Errorf("failed to construct queue: %w", err))
		return nil
	}

	for i, se := range entries {
		e, err := se.toEntry()
		if err != nil {
			b.report(fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		if err := q.Add(e); err != nil {
			b.report(fmt.Errorf("entry %d: %w", i, err))
			continue
		}
	}

	if _, err := q.Commit(); err != nil {
		b.report(fmt.Errorf("failed to commit queue: %w", err))
		return nil
	}
	return q
}

// BuildSimple constructs, fills, and commits a queue from a simple hook-to-
// value mapping. Hooks are processed in sorted name order since the map
// carries no insertion order; entry effects are order-independent anyway.
func BuildSimple(reg registry.Registry, entries Simple, opts ...Option) *queue.Queue {
	structured := make([]StructuredEntry, 0, len(entries))
	reported := make([]error, 0)

	hooks := make([]string, 0, len(entries))
	for hook := range entries {
		hooks = append(hooks, hook)
	}
	sort.Strings(hooks)

	for _, hook := range hooks {
		switch value := entries[hook].(type) {
		case bool:
			v := value
			structured = append(structured, StructuredEntry{Hook: hook, Constant: &v})
		case registry.Callback:
			structured = append(structured, StructuredEntry{Hook: hook, Remove: value.Ref})
		default:
			reported = append(reported, fmt.Errorf("%w %q: %T", ErrUnsupportedValue, hook, value))
		}
	}

	b := newBuilder(opts...)
	for _, err := range reported {
		b.report(err)
	}
	return BuildStructured(reg, structured, opts...)
}

// Validate checks the entry without queueing it.
func (se StructuredEntry) Validate() error {
	_, err := se.toEntry()
	return err
}

// toEntry validates the structured entry and converts it to a queue entry.
func (se StructuredEntry) toEntry() (queue.Entry, error) {
	if se.Hook == "" {
		return queue.Entry{}, ErrMissingHook
	}

	payloads := 0
	if se.Remove != nil {
		payloads++
	}
	if se.Constant != nil {
		payloads++
	}
	if se.Class != "" || se.Method != "" {
		payloads++
	}
	if payloads == 0 {
		return queue.Entry{}, ErrMissingPayload
	}
	if payloads > 1 {
		return queue.Entry{}, ErrAmbiguousPayload
	}

	var opts []queue.EntryOption
	if se.Priority != nil {
		opts = append(opts, queue.WithPriority(*se.Priority))
	}
	if se.Condition != nil {
		opts = append(opts, queue.WithCondition(se.Condition))
	}
	if se.Match != nil {
		opts = append(opts, queue.WithMatchOptions(*se.Match))
	}

	switch {
	case se.Remove != nil:
		return queue.NewRemoveCallbackEntry(se.Hook, se.Remove, opts...), nil
	case se.Constant != nil:
		return queue.NewInjectConstantEntry(se.Hook, *se.Constant, opts...), nil
	default:
		if se.Class == "" || se.Method == "" {
			return queue.Entry{}, ErrIncompleteClass
		}
		return queue.NewRemoveClassMethodEntry(se.Hook, se.Class, se.Method, opts...), nil
	}
}
