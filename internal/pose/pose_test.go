package pose

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/openxr/fake"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

// testSource is a minimal Source backed by a fake.Session, for tests.
type testSource struct {
	session   *fake.Session
	reference openxr.Space
	view      openxr.Space
	grips     map[uint32]openxr.Space
	aims      map[uint32]openxr.Space
	trackers  map[uint32]openxr.Space
}

func newTestSource() *testSource {
	s := fake.NewSession()
	ref, _ := s.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceStage)
	return &testSource{
		session:   s,
		reference: ref,
		grips:     make(map[uint32]openxr.Space),
		aims:      make(map[uint32]openxr.Space),
		trackers:  make(map[uint32]openxr.Space),
	}
}

func (s *testSource) Session() openxr.Session                       { return s.session }
func (s *testSource) ReferenceSpace(Origin) (openxr.Space, bool)     { return s.reference, s.reference != nil }
func (s *testSource) ViewSpace() (openxr.Space, bool)                { return s.view, s.view != nil }
func (s *testSource) GripSpace(idx uint32) (openxr.Space, bool)      { sp, ok := s.grips[idx]; return sp, ok }
func (s *testSource) AimSpace(idx uint32) (openxr.Space, bool)       { sp, ok := s.aims[idx]; return sp, ok }
func (s *testSource) TrackerSpace(idx uint32) (openxr.Space, bool)   { sp, ok := s.trackers[idx]; return sp, ok }
func (s *testSource) Now() time.Time                                { return time.Unix(0, 0) }

func TestCache_GetPose_HmdUsesViewSpace(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	view, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceView)
	src.view = view
	src.session.SetSpaceLocation(view, openxr.SpaceLocation{
		PositionValid: true, OrientationValid: true,
		Position:    openxr.Vector3{X: 1, Y: 2, Z: 3},
		Orientation: openxr.Quaternion{W: 1},
	})

	c := NewCache()
	p, err := c.GetPose(context.Background(), src, ovr.DeviceIndexHmd, OriginStanding, false, true)
	require.Nil(t, err)
	assert.True(t, p.PoseIsValid)
	assert.Equal(t, ovr.TrackingResultRunning_OK, p.TrackingResult)
	assert.Equal(t, float32(1), p.DeviceToAbsoluteTracking[0][3])
}

func TestCache_GetPose_MemoizesUntilCleared(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	view, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceView)
	src.view = view
	src.session.SetSpaceLocation(view, openxr.SpaceLocation{PositionValid: true, OrientationValid: true})

	c := NewCache()
	p1, err := c.GetPose(context.Background(), src, ovr.DeviceIndexHmd, OriginStanding, false, true)
	require.Nil(t, err)

	// Change the underlying location; a memoized read must not see it.
	src.session.SetSpaceLocation(view, openxr.SpaceLocation{PositionValid: true, OrientationValid: true, Position: openxr.Vector3{X: 99}})
	p2, err := c.GetPose(context.Background(), src, ovr.DeviceIndexHmd, OriginStanding, false, true)
	require.Nil(t, err)
	assert.Equal(t, p1, p2, "cached read must ignore the changed location")

	c.ClearAll()
	p3, err := c.GetPose(context.Background(), src, ovr.DeviceIndexHmd, OriginStanding, false, true)
	require.Nil(t, err)
	assert.Equal(t, float32(99), p3.DeviceToAbsoluteTracking[0][3])
}

func TestCache_GetPose_DisconnectedReturnsInvalidWithoutError(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	c := NewCache()
	p, err := c.GetPose(context.Background(), src, ovr.DeviceIndexLeftHand, OriginStanding, true, false)
	require.Nil(t, err)
	assert.False(t, p.PoseIsValid)
	assert.False(t, p.DeviceIsConnected)
}

func TestCache_GetPose_ControllerAppliesAimGripOffset(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	grip, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceLocal)
	aim, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceLocal)
	src.grips[ovr.DeviceIndexLeftHand] = grip
	src.aims[ovr.DeviceIndexLeftHand] = aim

	// aim relative to grip: shifted 0.05 forward.
	src.session.SetSpaceLocation(aim, openxr.SpaceLocation{PositionValid: true, OrientationValid: true, Position: openxr.Vector3{Z: 0.05}})
	// grip relative to the world reference space.
	src.session.SetSpaceLocation(grip, openxr.SpaceLocation{PositionValid: true, OrientationValid: true, Position: openxr.Vector3{X: 1}})

	c := NewCache()
	p, err := c.GetPose(context.Background(), src, ovr.DeviceIndexLeftHand, OriginStanding, true, true)
	require.Nil(t, err)
	assert.True(t, p.PoseIsValid)
	assert.Equal(t, float32(1), p.DeviceToAbsoluteTracking[0][3])
	assert.Equal(t, float32(0.05), p.DeviceToAbsoluteTracking[2][3])
}

func TestCache_GetPose_ControllerInvalidWhenAimNotYetLocatable(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	grip, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceLocal)
	src.grips[ovr.DeviceIndexLeftHand] = grip
	// No aim space registered yet.

	c := NewCache()
	p, err := c.GetPose(context.Background(), src, ovr.DeviceIndexLeftHand, OriginStanding, true, true)
	require.Nil(t, err)
	assert.False(t, p.PoseIsValid)
}

func TestCache_RefreshAll_ResolvesEveryDevice(t *testing.T) {
	t.Parallel()

	src := newTestSource()
	view, _ := src.session.CreateReferenceSpace(context.Background(), openxr.ReferenceSpaceView)
	src.view = view
	src.session.SetSpaceLocation(view, openxr.SpaceLocation{PositionValid: true, OrientationValid: true})

	c := NewCache()
	c.RefreshAll(context.Background(), src, []DeviceQuery{
		{Index: ovr.DeviceIndexHmd, Connected: true},
		{Index: ovr.DeviceIndexLeftHand, IsController: true, Connected: false},
	}, OriginStanding)

	c.mu.Lock()
	_, hmdCached := c.poses[cacheKey{device: ovr.DeviceIndexHmd, origin: OriginStanding}]
	_, leftCached := c.poses[cacheKey{device: ovr.DeviceIndexLeftHand, origin: OriginStanding}]
	c.mu.Unlock()
	assert.True(t, hmdCached)
	assert.True(t, leftCached)
}
