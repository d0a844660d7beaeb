package queue

import "github.com/telvenn/hookbatch/pkg/registry"

// callbackRemover removes one specific callback by identity. Success is
// exactly the host registry's own removal result; equality of the reference
// is whatever the host defines, this strategy never reinterprets it.
type callbackRemover struct{}

func (callbackRemover) apply(reg registry.Registry, e Entry) bool {
	return reg.RemoveCallback(e.Hook, e.Ref, e.Priority)
}
