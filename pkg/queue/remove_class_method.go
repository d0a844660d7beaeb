package queue

import (
	"github.com/telvenn/hookbatch/pkg/match"
	"github.com/telvenn/hookbatch/pkg/registry"
)

// classMethodRemover removes every callback at the entry's hook and priority
// whose owner matches the target class name and whose method name matches
// exactly. Plain functions are never candidates. Success requires at least
// one removal; an absent hook, an empty priority slot, or no match is a
// no-op.
type classMethodRemover struct{}

func (classMethodRemover) apply(reg registry.Registry, e Entry) bool {
	if !reg.HookExists(e.Hook) {
		return false
	}

	removed := false
	for _, cb := range reg.CallbacksAt(e.Hook, e.Priority) {
		if !cb.IsMethod() {
			continue
		}
		if cb.Method != e.Method {
			continue
		}
		if !match.Class(cb.Owner, e.Class, e.Match) {
			continue
		}
		if reg.RemoveCallback(e.Hook, cb.Ref, e.Priority) {
			removed = true
		}
	}
	return removed
}
