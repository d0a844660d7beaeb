// Package registry defines the host-registry boundary the hookbatch engine
// consumes. The engine never implements this interface itself; the host
// application owns callback storage and dispatch.
package registry

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=registry.go -destination=mocks/registry.gen.go -package=mocks

// CallbackRef is the opaque identity of a registered callback. The host
// defines equality for refs; the engine only passes them through. Hosts
// should use comparable values (pointers, or small comparable structs) so
// that removal can match with ==. Go function values are not comparable,
// so a func itself cannot serve as a ref.
type CallbackRef interface{}

// Func is the invocable shape the host dispatches when a hook fires.
type Func func(args ...interface{}) interface{}

// Callback describes one callback registered at a hook.
type Callback struct {
	// Owner is the type identity of the bound receiver, or empty for a
	// plain function.
	Owner string

	// Method is the method name for bound callbacks, or the function
	// identity for plain ones.
	Method string

	// Ref is the identity used for removal.
	Ref CallbackRef

	// Invoke is called by the host when the hook fires.
	Invoke Func
}

// IsMethod reports whether the callback is bound to an owner type rather
// than being a plain function.
func (c Callback) IsMethod() bool {
	return c.Owner != ""
}

// Registry is the host's extension-point registry.
type Registry interface {
	// HookExists reports whether the named hook is known to the host.
	HookExists(name string) bool

	// CallbacksAt returns the callbacks bound at the hook and priority,
	// in the host's dispatch order.
	CallbacksAt(name string, priority int) []Callback

	// RemoveCallback removes the callback identified by ref at the hook
	// and priority. It reports whether anything was removed.
	RemoveCallback(name string, ref CallbackRef, priority int) bool

	// RegisterCallback binds a callback at the hook and priority.
	RegisterCallback(name string, cb Callback, priority int)
}
