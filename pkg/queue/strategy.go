package queue

import "github.com/telvenn/hookbatch/pkg/registry"

// operationStrategy applies one entry's effect against the host registry.
// A false return means nothing was applied (absent hook, no match); that is
// a no-op, never an error.
type operationStrategy interface {
	apply(reg registry.Registry, e Entry) bool
}

// strategyFor returns the strategy handling the entry's operation, or nil
// for an operation the engine does not know.
func strategyFor(op Operation) operationStrategy {
	switch op {
	case OpRemoveCallback:
		return callbackRemover{}
	case OpInjectConstant:
		return constantInjector{}
	case OpRemoveClassMethod:
		return classMethodRemover{}
	default:
		return nil
	}
}
