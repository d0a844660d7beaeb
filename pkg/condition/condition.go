// Package condition provides predicate gating for queued hook modifications.
package condition

// Condition is a predicate evaluated at commit time. A batch carries an
// optional global condition; each entry carries an optional local one.
type Condition func() bool

// Evaluate reports whether the condition passes. A nil condition always
// passes.
func Evaluate(c Condition) bool {
	if c == nil {
		return true
	}
	return c()
}
