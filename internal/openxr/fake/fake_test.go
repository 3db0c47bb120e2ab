package fake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

func TestInstance_StringToPathIsStable(t *testing.T) {
	t.Parallel()

	inst := NewInstance()
	ctx := context.Background()

	p1, err := inst.StringToPath(ctx, "/user/hand/left")
	require.NoError(t, err)
	p2, err := inst.StringToPath(ctx, "/user/hand/left")
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	s, ok := inst.PathString(p1)
	require.True(t, ok)
	assert.Equal(t, "/user/hand/left", s)
}

func TestInstance_CreateActionSetAndAction(t *testing.T) {
	t.Parallel()

	inst := NewInstance()
	ctx := context.Background()

	set, err := inst.CreateActionSet(ctx, "main", "Main", 0)
	require.NoError(t, err)

	action, err := inst.CreateAction(ctx, set, "teleport", "Teleport", openxr.ActionTypeBoolean, nil)
	require.NoError(t, err)
	assert.Equal(t, openxr.ActionTypeBoolean, action.Kind())

	sets := inst.ActionSets()
	require.Len(t, sets, 1)
	assert.Len(t, sets[0].Actions(), 1)
}

func TestSession_SyncActionsRequiresAttach(t *testing.T) {
	t.Parallel()

	inst := NewInstance()
	session := NewSession()
	ctx := context.Background()

	set, _ := inst.CreateActionSet(ctx, "main", "Main", 0)
	err := session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: set}})
	assert.Error(t, err)
}

func TestSession_SyncAppliesPendingActionState(t *testing.T) {
	t.Parallel()

	inst := NewInstance()
	session := NewSession()
	ctx := context.Background()

	set, _ := inst.CreateActionSet(ctx, "main", "Main", 0)
	actionIface, _ := inst.CreateAction(ctx, set, "teleport", "Teleport", openxr.ActionTypeBoolean, nil)
	action := actionIface.(*Action)

	require.NoError(t, session.AttachActionSets(ctx, []openxr.ActionSet{set}))

	action.SetBool(openxr.NullPath, true)
	require.NoError(t, session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: set}}))

	state, err := action.Bool(ctx, openxr.NullPath)
	require.NoError(t, err)
	assert.True(t, state.CurrentState)
	assert.True(t, state.Changed, "first commit must report changed")

	// A second sync with the same value reports no change.
	action.SetBool(openxr.NullPath, true)
	require.NoError(t, session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: set}}))
	state, err = action.Bool(ctx, openxr.NullPath)
	require.NoError(t, err)
	assert.False(t, state.Changed)

	assert.Equal(t, 2, session.SyncCount())
}

func TestSession_LocateSpaceReturnsConfiguredLocation(t *testing.T) {
	t.Parallel()

	session := NewSession()
	ctx := context.Background()

	ref, err := session.CreateReferenceSpace(ctx, openxr.ReferenceSpaceStage)
	require.NoError(t, err)

	want := openxr.SpaceLocation{PositionValid: true, Position: openxr.Vector3{X: 1, Y: 2, Z: 3}}
	session.SetSpaceLocation(ref, want)

	got, err := session.LocateSpace(ctx, ref, ref, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSession_ApplyHapticFeedbackRecordsCall(t *testing.T) {
	t.Parallel()

	inst := NewInstance()
	session := NewSession()
	ctx := context.Background()

	set, _ := inst.CreateActionSet(ctx, "main", "Main", 0)
	haptic, _ := inst.CreateAction(ctx, set, "haptic", "Haptic", openxr.ActionTypeVibration, nil)

	vib := openxr.HapticVibration{Frequency: 160, Amplitude: 1}
	require.NoError(t, session.ApplyHapticFeedback(ctx, haptic, openxr.NullPath, vib))

	calls := session.HapticCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, vib, calls[0].Vibration)
}
