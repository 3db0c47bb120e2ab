// Package pose resolves OpenVR tracked-device poses against an OpenXR
// reference space, memoizing results for the lifetime of one frame.
package pose

import (
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

// Origin mirrors ETrackingUniverseOrigin.
type Origin int

const (
	OriginSeated Origin = iota
	OriginStanding
	OriginRawAndUncalibrated
)

// Source supplies the OpenXR collaborators a Resolver needs: the
// session to locate spaces against, the reference space selected by
// an Origin, the view/device-specific spaces to locate, and the
// current display time. internal/session implements this.
type Source interface {
	Session() openxr.Session
	ReferenceSpace(origin Origin) (openxr.Space, bool)
	// ViewSpace returns the HMD's view space.
	ViewSpace() (openxr.Space, bool)
	// GripSpace and AimSpace return a controller's grip-pose and
	// aim-pose action spaces, keyed by device index.
	GripSpace(deviceIndex uint32) (openxr.Space, bool)
	AimSpace(deviceIndex uint32) (openxr.Space, bool)
	// TrackerSpace returns a tracker's external space.
	TrackerSpace(deviceIndex uint32) (openxr.Space, bool)
	Now() time.Time
}

func locationToPose(loc openxr.SpaceLocation, connected bool) ovr.TrackedDevicePose {
	result := ovr.TrackingResultUninitialized
	switch {
	case loc.PositionValid && loc.OrientationValid:
		result = ovr.TrackingResultRunning_OK
	case loc.PositionTracked || loc.OrientationTracked:
		result = ovr.TrackingResultRunning_OutOfRange
	}

	return ovr.TrackedDevicePose{
		DeviceToAbsoluteTracking: matrixFromLocation(loc),
		Velocity:                 toOvrVector3(loc.LinearVelocity),
		AngularVelocity:          toOvrVector3(loc.AngularVelocity),
		TrackingResult:           result,
		PoseIsValid:              loc.PositionValid && loc.OrientationValid,
		DeviceIsConnected:        connected,
	}
}

func toOvrVector3(v openxr.Vector3) ovr.Vector3 {
	return ovr.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func matrixFromLocation(loc openxr.SpaceLocation) ovr.Matrix34 {
	q := loc.Orientation
	x, y, z, w := q.X, q.Y, q.Z, q.W
	r00 := 1 - 2*(y*y+z*z)
	r01 := 2 * (x*y - z*w)
	r02 := 2 * (x*z + y*w)
	r10 := 2 * (x*y + z*w)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - x*w)
	r20 := 2 * (x*z - y*w)
	r21 := 2 * (y*z + x*w)
	r22 := 1 - 2*(x*x+y*y)

	return ovr.Matrix34{
		{r00, r01, r02, loc.Position.X},
		{r10, r11, r12, loc.Position.Y},
		{r20, r21, r22, loc.Position.Z},
	}
}
