package queue

import (
	"github.com/google/uuid"
	"github.com/telvenn/hookbatch/pkg/condition"
	"github.com/telvenn/hookbatch/pkg/match"
	"github.com/telvenn/hookbatch/pkg/registry"
)

// Operation identifies which effect an entry applies at commit time.
type Operation string

const (
	// OpRemoveCallback removes one specific callback by identity.
	OpRemoveCallback Operation = "remove-callback"

	// OpInjectConstant registers a callback that always returns a
	// constant boolean.
	OpInjectConstant Operation = "inject-constant"

	// OpRemoveClassMethod removes every callback whose owner matches a
	// class name and whose method name matches exactly.
	OpRemoveClassMethod Operation = "remove-class-method"
)

// DefaultPriority is the ordering slot used when neither the entry nor the
// queue configures one.
const DefaultPriority = 10

// Entry is one queued modification against the host registry. Exactly one
// payload group is meaningful, selected by Operation.
type Entry struct {
	ID        uuid.UUID
	Hook      string
	Priority  int
	Condition condition.Condition
	Operation Operation

	// Ref is the callback identity for OpRemoveCallback.
	Ref registry.CallbackRef

	// Constant is the injected value for OpInjectConstant.
	Constant bool

	// Class, Method and Match drive OpRemoveClassMethod.
	Class  string
	Method string
	Match  match.Options

	hasPriority bool
}

// EntryOption configures an entry at construction.
type EntryOption func(*Entry)

// WithPriority pins the registry ordering slot the operation applies at.
// Entries without an explicit priority pick up the queue default at commit
// time.
func WithPriority(priority int) EntryOption {
	return func(e *Entry) {
		e.Priority = priority
		e.hasPriority = true
	}
}

// WithCondition gates the entry on a predicate evaluated at commit time. A
// false predicate skips the entry without counting as a failure.
func WithCondition(c condition.Condition) EntryOption {
	return func(e *Entry) {
		e.Condition = c
	}
}

// WithMatchOptions overrides the exact-match default for class-method
// removal entries.
func WithMatchOptions(opts match.Options) EntryOption {
	return func(e *Entry) {
		e.Match = opts
	}
}

// NewRemoveCallbackEntry queues removal of a specific registered callback.
// Identity equality for ref is defined by the host registry.
func NewRemoveCallbackEntry(hook string, ref registry.CallbackRef, opts ...EntryOption) Entry {
	e := newEntry(hook, OpRemoveCallback, opts...)
	e.Ref = ref
	return e
}

// NewInjectConstantEntry queues registration of a callback that
// unconditionally returns value when the host later invokes it.
func NewInjectConstantEntry(hook string, value bool, opts ...EntryOption) Entry {
	e := newEntry(hook, OpInjectConstant, opts...)
	e.Constant = value
	return e
}

// NewRemoveClassMethodEntry queues removal of every callback at the hook
// whose owner matches class and whose method name equals method.
func NewRemoveClassMethodEntry(hook, class, method string, opts ...EntryOption) Entry {
	e := newEntry(hook, OpRemoveClassMethod, opts...)
	e.Class = class
	e.Method = method
	return e
}

func newEntry(hook string, op Operation, opts ...EntryOption) Entry {
	e := Entry{
		ID:        uuid.New(),
		Hook:      hook,
		Operation: op,
		Match:     match.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
