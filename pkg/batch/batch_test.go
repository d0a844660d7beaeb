//go:build unit

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/telvenn/hookbatch/pkg/queue"
	"github.com/telvenn/hookbatch/pkg/registry"
	"github.com/telvenn/hookbatch/pkg/registry/mocks"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestBuildStructured_CommitsBeforeReturning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	ref := "my-callback"
	mockRegistry.EXPECT().RemoveCallback("init", ref, queue.DefaultPriority).Return(true)
	mockRegistry.EXPECT().RegisterCallback("feature_enabled", gomock.Any(), 30)

	q := BuildStructured(mockRegistry, []StructuredEntry{
		{Hook: "init", Remove: ref},
		{Hook: "feature_enabled", Constant: boolPtr(true), Priority: intPtr(30)},
	})

	require.NotNil(t, q)
	assert.Len(t, q.Results(), 2)
	assert.True(t, q.VerifyResults())

	// The returned queue is already committed.
	assert.ErrorIs(t, q.Add(queue.NewInjectConstantEntry("late", true)), queue.ErrAlreadyCommitted)
}

func TestBuildStructured_MalformedEntriesSkippedAndReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	ref := "my-callback"
	mockRegistry.EXPECT().RemoveCallback("init", ref, queue.DefaultPriority).Return(true)

	var reported []error
	q := BuildStructured(mockRegistry, []StructuredEntry{
		{Hook: "", Remove: ref},                                 // missing hook
		{Hook: "init"},                                          // no payload
		{Hook: "init", Remove: ref, Constant: boolPtr(true)},    // ambiguous
		{Hook: "notify", Class: "Email_Notifier"},               // missing method
		{Hook: "init", Remove: ref},                             // valid
	}, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	require.NotNil(t, q)
	require.Len(t, reported, 4)
	assert.ErrorIs(t, reported[0], ErrMissingHook)
	assert.ErrorIs(t, reported[1], ErrMissingPayload)
	assert.ErrorIs(t, reported[2], ErrAmbiguousPayload)
	assert.ErrorIs(t, reported[3], ErrIncompleteClass)

	// Only the valid entry was queued.
	assert.Equal(t, 1, q.Len())
	assert.True(t, q.VerifyResults())
}

func TestBuildStructured_NilRegistryReturnsNilSentinel(t *testing.T) {
	var reported []error
	q := BuildStructured(nil, []StructuredEntry{
		{Hook: "init", Constant: boolPtr(true)},
	}, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	assert.Nil(t, q)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], queue.ErrNilRegistry)
}

func TestBuildStructured_NoErrorHandlerDoesNotPanic(t *testing.T) {
	assert.Nil(t, BuildStructured(nil, []StructuredEntry{{Hook: "init"}}))
}

func TestBuildSimple(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	ref := "legacy-callback"
	mockRegistry.EXPECT().RegisterCallback("feature_enabled", gomock.Any(), queue.DefaultPriority)
	mockRegistry.EXPECT().RemoveCallback("init", ref, queue.DefaultPriority).Return(true)

	var reported []error
	q := BuildSimple(mockRegistry, Simple{
		"feature_enabled": true,
		"init":            registry.Callback{Method: "legacy", Ref: ref},
		"broken":          42,
	}, WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))

	require.NotNil(t, q)
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.VerifyResults())

	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], ErrUnsupportedValue)
}

func TestBuildSimple_QueueOptionsForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)
	mockRegistry.EXPECT().RegisterCallback("feature_enabled", gomock.Any(), 99)

	q := BuildSimple(mockRegistry, Simple{
		"feature_enabled": true,
	}, WithQueueOptions(queue.WithDefaultPriority(99)))

	require.NotNil(t, q)
	assert.True(t, q.VerifyResults())
}

func TestBuildStructured_ConditionForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The skipped entry must never reach the registry.
	mockRegistry := mocks.NewMockRegistry(ctrl)

	q := BuildStructured(mockRegistry, []StructuredEntry{
		{Hook: "feature_enabled", Constant: boolPtr(true), Condition: func() bool { return false }},
	})

	require.NotNil(t, q)
	assert.Empty(t, q.Results())
	assert.False(t, q.VerifyResults())
}
