//go:build unit

package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_NilConditionPasses(t *testing.T) {
	assert.True(t, Evaluate(nil))
}

func TestEvaluate_TrueCondition(t *testing.T) {
	assert.True(t, Evaluate(func() bool { return true }))
}

func TestEvaluate_FalseCondition(t *testing.T) {
	assert.False(t, Evaluate(func() bool { return false }))
}

func TestEvaluate_ConditionEvaluatedEachTime(t *testing.T) {
	calls := 0
	cond := Condition(func() bool {
		calls++
		return calls > 1
	})

	assert.False(t, Evaluate(cond))
	assert.True(t, Evaluate(cond))
	assert.Equal(t, 2, calls)
}
