package ovr

import "math"

// Matrix34 is the OpenVR 3x4 row-major device-to-absolute-tracking matrix;
// translation lives in column 3 of each row.
type Matrix34 [3][4]float32

// Identity returns the identity Matrix34.
func Identity() Matrix34 {
	return Matrix34{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

// Vector3 is a 3-component float vector.
type Vector3 struct {
	X, Y, Z float32
}

// TrackingResult mirrors ETrackingResult.
type TrackingResult int32

const (
	TrackingResultUninitialized         TrackingResult = 1
	TrackingResultCalibrating_InProgress TrackingResult = 100
	TrackingResultCalibrating_OutOfRange TrackingResult = 101
	TrackingResultRunning_OK             TrackingResult = 200
	TrackingResultRunning_OutOfRange     TrackingResult = 201
	TrackingResultFallback_RotationOnly  TrackingResult = 300
)

// TrackedDevicePose is the wire shape of TrackedDevicePose_t: the core
// fills one of these in per device, per frame, for the host to read.
type TrackedDevicePose struct {
	DeviceToAbsoluteTracking Matrix34
	Velocity                 Vector3
	AngularVelocity          Vector3
	TrackingResult           TrackingResult
	PoseIsValid              bool
	DeviceIsConnected        bool
}

// Invalid returns a TrackedDevicePose reporting no tracking, the shape
// returned whenever a pose cannot be located this frame.
func Invalid() TrackedDevicePose {
	return TrackedDevicePose{
		DeviceToAbsoluteTracking: Identity(),
		TrackingResult:           TrackingResultUninitialized,
	}
}

// FromEulerDegreesTranslation builds a rigid Matrix34 from intrinsic
// XYZ Euler angles (degrees) and a translation, the same convention
// interaction profiles use to express a grip-to-aim offset.
func FromEulerDegreesTranslation(xDeg, yDeg, zDeg, tx, ty, tz float32) Matrix34 {
	rad := func(d float32) float64 { return float64(d) * math.Pi / 180 }
	cx, sx := math.Cos(rad(xDeg)), math.Sin(rad(xDeg))
	cy, sy := math.Cos(rad(yDeg)), math.Sin(rad(yDeg))
	cz, sz := math.Cos(rad(zDeg)), math.Sin(rad(zDeg))

	// R = Rz * Ry * Rx
	r00 := cy * cz
	r01 := sx*sy*cz - cx*sz
	r02 := cx*sy*cz + sx*sz
	r10 := cy * sz
	r11 := sx*sy*sz + cx*cz
	r12 := cx*sy*sz - sx*cz
	r20 := -sy
	r21 := sx * cy
	r22 := cx * cy

	return Matrix34{
		{float32(r00), float32(r01), float32(r02), tx},
		{float32(r10), float32(r11), float32(r12), ty},
		{float32(r20), float32(r21), float32(r22), tz},
	}
}

// Inverse returns the inverse of a rigid (rotation + translation)
// Matrix34, used to flip an offset defined in one frame's convention
// into the other's.
func (m Matrix34) Inverse() Matrix34 {
	// Transpose the rotation block, then translate by -R^T * t.
	var out Matrix34
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	t := Vector3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
	out[0][3] = -(out[0][0]*t.X + out[0][1]*t.Y + out[0][2]*t.Z)
	out[1][3] = -(out[1][0]*t.X + out[1][1]*t.Y + out[1][2]*t.Z)
	out[2][3] = -(out[2][0]*t.X + out[2][1]*t.Y + out[2][2]*t.Z)
	return out
}
