package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_PreCreatesFixedInputSources(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	left := r.InputSourceHandleForPath("/user/hand/left")
	right := r.InputSourceHandleForPath("/user/hand/right")

	require.NotZero(t, left)
	require.NotZero(t, right)
	assert.NotEqual(t, left, right)
}

func TestRegistry_IdenticalPathsReturnIdenticalHandles(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	a1 := r.ActionHandleForPath("/actions/main/in/teleport")
	a2 := r.ActionHandleForPath("/actions/main/in/teleport")
	assert.Equal(t, a1, a2)

	// Case-insensitive by path, per spec.
	a3 := r.ActionHandleForPath("/Actions/Main/In/Teleport")
	assert.Equal(t, a1, a3)
}

func TestRegistry_DistinctPathsGetDistinctHandles(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	a := r.ActionHandleForPath("/actions/main/in/grip")
	b := r.ActionHandleForPath("/actions/main/in/trigger")

	require.NotZero(t, a)
	require.NotZero(t, b)
	assert.NotEqual(t, a, b)
}

func TestRegistry_ValidateRejectsUnknownHandle(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	err := r.ValidateAction("GetDigitalActionData", 0xDEADBEEF)
	require.NotNil(t, err)
	assert.Equal(t, "GetDigitalActionData", err.Op)
}

func TestRegistry_InputSourceInternedOnFirstUse(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	h1 := r.InputSourceHandleForPath("/user/hand/left/input/trigger")
	h2 := r.InputSourceHandleForPath("/user/hand/left/input/trigger")
	assert.Equal(t, h1, h2)

	path, ok := r.LookupInputSourcePath(h1)
	require.True(t, ok)
	assert.Equal(t, "/user/hand/left/input/trigger", path)
}

func TestRegistry_ManifestAndExplicitQueryAgree(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	// Simulates manifest load creating the handle first...
	fromManifest := r.ActionHandleForPath("/actions/main/in/grip")
	// ...followed by an explicit host query for the same path.
	fromQuery := r.ActionHandleForPath("/actions/main/in/grip")

	assert.Equal(t, fromManifest, fromQuery)
}
