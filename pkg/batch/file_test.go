//go:build unit

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/telvenn/hookbatch/pkg/registry"
	"github.com/telvenn/hookbatch/pkg/registry/mocks"
)

const sampleFile = `
default_priority: 20
entries:
  - hook: feature_enabled
    constant: true
  - hook: notify
    class: Email_Notifier
    method: send
    priority: 30
    match:
      strict: false
      case_sensitive: false
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	require.NotNil(t, f.DefaultPriority)
	assert.Equal(t, 20, *f.DefaultPriority)
	assert.Nil(t, f.Deferred)

	require.Len(t, f.Entries, 2)
	require.NotNil(t, f.Entries[0].Constant)
	assert.True(t, *f.Entries[0].Constant)
	assert.Equal(t, "Email_Notifier", f.Entries[1].Class)
	require.NotNil(t, f.Entries[1].Match)
	assert.False(t, f.Entries[1].Match.Strict)
}

func TestParse_InvalidYAML(t *testing.T) {
	f, err := Parse([]byte("entries: [unclosed"))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrFileParse)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Entries, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, f)
	assert.Error(t, err)
}

func TestFile_Validate(t *testing.T) {
	f := &File{
		Deferred: &FileBinding{},
		Entries: []FileEntry{
			{Hook: "feature_enabled", Constant: boolPtr(true)},
			{Hook: ""},
			{Hook: "notify", Class: "Email_Notifier"},
		},
	}

	errs := f.Validate()
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], ErrMissingHook)
	assert.ErrorIs(t, errs[1], ErrIncompleteClass)
	assert.ErrorIs(t, errs[2], ErrMissingHook)
}

func TestFile_Validate_WellFormed(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)
	assert.Empty(t, f.Validate())
}

func TestFile_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)

	// Constant entry picks up the file's default priority; the class
	// removal uses its own.
	mockRegistry.EXPECT().RegisterCallback("feature_enabled", gomock.Any(), 20)
	mockRegistry.EXPECT().HookExists("notify").Return(true)
	mockRegistry.EXPECT().CallbacksAt("notify", 30).Return([]registry.Callback{
		{Owner: "My_Email_Notifier", Method: "send", Ref: "instance"},
	})
	mockRegistry.EXPECT().RemoveCallback("notify", "instance", 30).Return(true)

	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	q := f.Build(mockRegistry)
	require.NotNil(t, q)
	assert.True(t, q.VerifyResults())
}

func TestFile_Build_Deferred(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockRegistry(ctrl)

	var deferred registry.Callback
	mockRegistry.EXPECT().
		RegisterCallback("plugins_loaded", gomock.Any(), 1).
		Do(func(_ string, cb registry.Callback, _ int) {
			deferred = cb
		})

	f := &File{
		Deferred: &FileBinding{Hook: "plugins_loaded", Priority: 1},
		Entries: []FileEntry{
			{Hook: "feature_enabled", Constant: boolPtr(true)},
		},
	}

	q := f.Build(mockRegistry)
	require.NotNil(t, q)

	// Nothing applied until the host dispatches the binding hook.
	assert.Empty(t, q.Results())

	mockRegistry.EXPECT().RegisterCallback("feature_enabled", gomock.Any(), 10)
	deferred.Invoke()

	assert.True(t, q.VerifyResults())
}
