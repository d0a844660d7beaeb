package queue

import "github.com/telvenn/hookbatch/pkg/registry"

// constantInjector registers a callback that unconditionally returns the
// entry's constant value. It is additive only: nothing is removed, and
// success is reported as soon as the registration is issued.
type constantInjector struct{}

func (constantInjector) apply(reg registry.Registry, e Entry) bool {
	value := e.Constant
	reg.RegisterCallback(e.Hook, registry.Callback{
		Method: "constant",
		Ref:    e.ID,
		Invoke: func(_ ...interface{}) interface{} {
			return value
		},
	}, e.Priority)
	return true
}
