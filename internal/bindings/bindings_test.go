package bindings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/bindings"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/openxr/fake"
)

func newPath(t *testing.T, instance *fake.Instance, s string) openxr.Path {
	t.Helper()
	p, err := instance.StringToPath(context.Background(), s)
	require.NoError(t, err)
	return p
}

func syncAll(t *testing.T, session *fake.Session, set openxr.ActionSet) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, session.AttachActionSets(ctx, []openxr.ActionSet{set}))
	require.NoError(t, session.SyncActions(ctx, []openxr.ActiveActionSet{{Set: set, SubactionPath: openxr.NullPath}}))
}

func TestDpad_EastWedgeActivatesAndLatches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	xy, err := instance.CreateAction(ctx, set, "xy", "xy", openxr.ActionTypeVector2f, []openxr.Path{left})
	require.NoError(t, err)

	xy.(*fake.Action).SetVector2f(left, 1.0, 0.0)
	syncAll(t, session, set)

	dpad := bindings.NewDpad(session, xy, nil, nil, bindings.DirectionEast)
	st, err := dpad.State(ctx, left)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.CurrentState)
	assert.True(t, st.Changed)
}

func TestDpad_CenterZoneNeverActivatesCardinal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	xy, err := instance.CreateAction(ctx, set, "xy", "xy", openxr.ActionTypeVector2f, []openxr.Path{left})
	require.NoError(t, err)

	xy.(*fake.Action).SetVector2f(left, 0.1, 0.1)
	syncAll(t, session, set)

	dpad := bindings.NewDpad(session, xy, nil, nil, bindings.DirectionNorth)
	st, err := dpad.State(ctx, left)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.False(t, st.CurrentState)
}

func TestDpad_ForceActivatorGatesDirection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	xy, err := instance.CreateAction(ctx, set, "xy", "xy", openxr.ActionTypeVector2f, []openxr.Path{left})
	require.NoError(t, err)
	force, err := instance.CreateAction(ctx, set, "force", "force", openxr.ActionTypeFloat, []openxr.Path{left})
	require.NoError(t, err)

	xy.(*fake.Action).SetVector2f(left, 1.0, 0.0)
	force.(*fake.Action).SetFloat(left, 0.1)
	syncAll(t, session, set)

	dpad := bindings.NewDpad(session, xy, force, nil, bindings.DirectionEast)
	st, err := dpad.State(ctx, left)
	require.NoError(t, err)
	assert.Nil(t, st, "force below click threshold should not activate")
}

func TestGrab_HoldAndReleaseHysteresis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	forceAction, err := instance.CreateAction(ctx, set, "force", "force", openxr.ActionTypeFloat, []openxr.Path{left})
	require.NoError(t, err)
	valueAction, err := instance.CreateAction(ctx, set, "value", "value", openxr.ActionTypeFloat, []openxr.Path{left})
	require.NoError(t, err)

	grab := bindings.NewGrab(forceAction, valueAction, 0, 0)

	valueAction.(*fake.Action).SetFloat(left, 0.75)
	forceAction.(*fake.Action).SetFloat(left, 0)
	syncAll(t, session, set)
	st, err := grab.State(ctx, left)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.CurrentState)

	valueAction.(*fake.Action).SetFloat(left, 0.68)
	syncAll(t, session, set)
	st, err = grab.State(ctx, left)
	require.NoError(t, err)
	assert.True(t, st.CurrentState, "should remain grabbed above release threshold")

	valueAction.(*fake.Action).SetFloat(left, 0.60)
	syncAll(t, session, set)
	st, err = grab.State(ctx, left)
	require.NoError(t, err)
	assert.False(t, st.CurrentState, "should release below release threshold")
}

func TestToggle_FlipsOnRisingEdge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	source, err := instance.CreateAction(ctx, set, "src", "src", openxr.ActionTypeBoolean, []openxr.Path{left})
	require.NoError(t, err)

	toggle := bindings.NewToggle(source)

	source.(*fake.Action).SetBool(left, true)
	syncAll(t, session, set)
	st, err := toggle.State(ctx, left)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.CurrentState)

	source.(*fake.Action).SetBool(left, false)
	syncAll(t, session, set)
	st, err = toggle.State(ctx, left)
	require.NoError(t, err)
	assert.True(t, st.CurrentState, "falling edge must not flip the toggle")

	source.(*fake.Action).SetBool(left, true)
	syncAll(t, session, set)
	st, err = toggle.State(ctx, left)
	require.NoError(t, err)
	assert.False(t, st.CurrentState, "second rising edge flips back")
}

func TestThreshold_Hysteresis(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	source, err := instance.CreateAction(ctx, set, "src", "src", openxr.ActionTypeFloat, []openxr.Path{left})
	require.NoError(t, err)

	th := bindings.NewThresholdFloat(source, 0, 0)

	source.(*fake.Action).SetFloat(left, 0.30)
	syncAll(t, session, set)
	st, err := th.State(ctx, left)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.CurrentState)

	source.(*fake.Action).SetFloat(left, 0.22)
	syncAll(t, session, set)
	st, err = th.State(ctx, left)
	require.NoError(t, err)
	assert.True(t, st.CurrentState, "stays clicked above release threshold")

	source.(*fake.Action).SetFloat(left, 0.10)
	syncAll(t, session, set)
	st, err = th.State(ctx, left)
	require.NoError(t, err)
	assert.False(t, st.CurrentState)
}

func TestSet_MemoizesUntilAdvance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	instance := fake.NewInstance()
	session := fake.NewSession()
	left := newPath(t, instance, "/user/hand/left")

	set, err := instance.CreateActionSet(ctx, "s", "S", 0)
	require.NoError(t, err)
	source, err := instance.CreateAction(ctx, set, "src", "src", openxr.ActionTypeBoolean, []openxr.Path{left})
	require.NoError(t, err)

	toggle := bindings.NewToggle(source)
	evaluators := bindings.NewSet()
	idx := evaluators.Add(toggle)

	source.(*fake.Action).SetBool(left, true)
	syncAll(t, session, set)

	st1, err := evaluators.StateAt(ctx, idx, left)
	require.NoError(t, err)
	require.NotNil(t, st1)
	assert.True(t, st1.CurrentState)

	source.(*fake.Action).SetBool(left, false)
	syncAll(t, session, set)
	source.(*fake.Action).SetBool(left, true)

	st2, err := evaluators.StateAt(ctx, idx, left)
	require.NoError(t, err)
	assert.Equal(t, st1.CurrentState, st2.CurrentState, "cached until Advance, even though a new rising edge was queued")

	evaluators.Advance()
	syncAll(t, session, set)
	st3, err := evaluators.StateAt(ctx, idx, left)
	require.NoError(t, err)
	assert.False(t, st3.CurrentState, "after Advance + resync, the second rising edge is observed")
}
