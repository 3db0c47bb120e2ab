package legacy_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/events"
	"github.com/Supreeeme/xrizer/internal/legacy"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/openxr/fake"
	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

func setupFixture(t *testing.T) (*fake.Instance, *fake.Session, *legacy.Actions, openxr.Path, openxr.Path) {
	t.Helper()
	ctx := context.Background()

	instance := fake.NewInstance()
	left, err := instance.StringToPath(ctx, "/user/hand/left")
	require.NoError(t, err)
	right, err := instance.StringToPath(ctx, "/user/hand/right")
	require.NoError(t, err)

	actions, err := legacy.NewActions(ctx, instance, left, right)
	require.NoError(t, err)

	return instance, fake.NewSession(), actions, left, right
}

func TestNewActions_CreatesEveryFixedAction(t *testing.T) {
	t.Parallel()
	_, _, actions, _, _ := setupFixture(t)

	assert.NotNil(t, actions.AppMenu)
	assert.NotNil(t, actions.A)
	assert.NotNil(t, actions.TriggerClick)
	assert.NotNil(t, actions.SqueezeClick)
	assert.NotNil(t, actions.Trigger)
	assert.NotNil(t, actions.Squeeze)
	assert.NotNil(t, actions.MainXY)
	assert.NotNil(t, actions.MainXYTouch)
	assert.NotNil(t, actions.MainXYClick)
	assert.NotNil(t, actions.Haptic)
}

func TestActions_SuggestBindings_CoversEveryKnownProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance, _, actions, left, right := setupFixture(t)

	gripPose, err := instance.CreateAction(ctx, actions.Set, "grip-pose", "Grip Pose", openxr.ActionTypePose, []openxr.Path{left, right})
	require.NoError(t, err)
	aimPose, err := instance.CreateAction(ctx, actions.Set, "aim-pose", "Aim Pose", openxr.ActionTypePose, []openxr.Path{left, right})
	require.NoError(t, err)

	require.NoError(t, actions.SuggestBindings(ctx, instance, profiles.All(), gripPose, aimPose))

	knuckles := profiles.ByPath("/interaction_profiles/valve/index_controller")
	require.NotNil(t, knuckles)
	profilePath, err := instance.StringToPath(ctx, knuckles.Path)
	require.NoError(t, err)

	suggested := instance.SuggestedPaths(profilePath, actions.Trigger)
	assert.NotEmpty(t, suggested)
}

func TestGetControllerState_ComposesButtonsAndAxes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, session, actions, left, _ := setupFixture(t)

	fakeSet, ok := actions.Set.(*fake.ActionSet)
	require.True(t, ok)

	triggerClick := actions.TriggerClick.(*fake.Action)
	triggerClick.SetBool(left, true)
	main := actions.MainXY.(*fake.Action)
	main.SetVector2f(left, 0.5, -0.25)
	trigger := actions.Trigger.(*fake.Action)
	trigger.SetFloat(left, 0.75)
	squeeze := actions.Squeeze.(*fake.Action)
	squeeze.SetFloat(left, 0.9)

	require.NoError(t, session.AttachActionSets(ctx, []openxr.ActionSet{actions.Set}))
	require.NoError(t, session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: fakeSet, SubactionPath: openxr.NullPath}}))

	state := legacy.NewState()
	state.OnActionSync()
	queue := events.NewQueue()

	out, err := legacy.GetControllerState(ctx, actions, state, queue, ovr.DeviceIndexLeftHand, "left", left)
	require.NoError(t, err)

	assert.NotZero(t, out.ButtonPressed&ovr.ButtonMask(ovr.ButtonSteamVRTrigger))
	assert.InDelta(t, 0.5, out.Axis[ovr.AxisStickOrPad].X, 1e-6)
	assert.InDelta(t, -0.25, out.Axis[ovr.AxisStickOrPad].Y, 1e-6)
	assert.InDelta(t, 0.75, out.Axis[ovr.AxisTrigger].X, 1e-6)
	assert.InDelta(t, 0.9, out.Axis[ovr.AxisGrip].X, 1e-6)

	assert.Equal(t, 1, queue.Len())
}

func TestGetControllerState_OnlyEmitsEventsOncePerHandPerSync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, session, actions, left, _ := setupFixture(t)

	fakeSet, ok := actions.Set.(*fake.ActionSet)
	require.True(t, ok)

	actions.TriggerClick.(*fake.Action).SetBool(left, true)
	require.NoError(t, session.AttachActionSets(ctx, []openxr.ActionSet{actions.Set}))
	require.NoError(t, session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: fakeSet, SubactionPath: openxr.NullPath}}))

	state := legacy.NewState()
	state.OnActionSync()
	queue := events.NewQueue()

	_, err := legacy.GetControllerState(ctx, actions, state, queue, ovr.DeviceIndexLeftHand, "left", left)
	require.NoError(t, err)
	require.Equal(t, 1, queue.Len())

	_, err = legacy.GetControllerState(ctx, actions, state, queue, ovr.DeviceIndexLeftHand, "left", left)
	require.NoError(t, err)
	assert.Equal(t, 1, queue.Len(), "second read before next sync must not enqueue duplicate events")
}

func TestGetControllerState_PacketNumTracksSyncs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, _, actions, left, _ := setupFixture(t)

	state := legacy.NewState()
	queue := events.NewQueue()

	state.OnActionSync()
	out1, err := legacy.GetControllerState(ctx, actions, state, queue, ovr.DeviceIndexLeftHand, "left", left)
	require.NoError(t, err)

	state.OnActionSync()
	out2, err := legacy.GetControllerState(ctx, actions, state, queue, ovr.DeviceIndexLeftHand, "left", left)
	require.NoError(t, err)

	assert.Equal(t, out1.PacketNum+1, out2.PacketNum)
}

func TestHaptic_AppliesFullAmplitudeVibration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, session, actions, left, _ := setupFixture(t)

	require.NoError(t, legacy.Haptic(ctx, session, actions, left, 5*time.Millisecond))

	calls := session.HapticCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, float32(1.0), calls[0].Vibration.Amplitude)
	assert.Equal(t, 5*time.Millisecond, calls[0].Vibration.Duration)
}

func TestSetup_AttachesAndSyncsOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()

	left, err := instance.StringToPath(ctx, "/user/hand/left")
	require.NoError(t, err)
	right, err := instance.StringToPath(ctx, "/user/hand/right")
	require.NoError(t, err)

	poseSet, err := instance.CreateActionSet(ctx, "pose-set", "Pose Set", 0)
	require.NoError(t, err)
	gripPose, err := instance.CreateAction(ctx, poseSet, "grip-pose", "Grip Pose", openxr.ActionTypePose, []openxr.Path{left, right})
	require.NoError(t, err)
	aimPose, err := instance.CreateAction(ctx, poseSet, "aim-pose", "Aim Pose", openxr.ActionTypePose, []openxr.Path{left, right})
	require.NoError(t, err)

	actions, state, err := legacy.Setup(ctx, instance, session, left, right, gripPose, aimPose, poseSet)
	require.NoError(t, err)
	require.NotNil(t, actions)
	require.NotNil(t, state)

	assert.Equal(t, 1, session.SyncCount())
}
