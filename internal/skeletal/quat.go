package skeletal

import (
	"math"

	"github.com/Supreeeme/xrizer/internal/ovr"
)

var identityQuat = ovr.Quaternion{W: 1}

func degToRad(deg float32) float32 { return deg * math.Pi / 180 }

// axisAngle returns the quaternion rotating by angle radians around
// axis (which need not be normalized).
func axisAngle(axis ovr.Vector3, angle float32) ovr.Quaternion {
	n := float32(math.Sqrt(float64(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)))
	if n == 0 {
		return identityQuat
	}
	axis.X, axis.Y, axis.Z = axis.X/n, axis.Y/n, axis.Z/n
	half := angle / 2
	s := float32(math.Sin(float64(half)))
	return ovr.Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: float32(math.Cos(float64(half)))}
}

// quatMultiply returns a*b (apply b first, then a).
func quatMultiply(a, b ovr.Quaternion) ovr.Quaternion {
	return ovr.Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// quatNlerp normalized-linear-interpolates between a and b by t in
// [0,1], taking the shorter path.
func quatNlerp(a, b ovr.Quaternion, t float32) ovr.Quaternion {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		b = ovr.Quaternion{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
	}
	out := ovr.Quaternion{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
	n := float32(math.Sqrt(float64(out.X*out.X + out.Y*out.Y + out.Z*out.Z + out.W*out.W)))
	if n == 0 {
		return identityQuat
	}
	out.X, out.Y, out.Z, out.W = out.X/n, out.Y/n, out.Z/n, out.W/n
	return out
}

func lerpVec3(a, b ovr.Vector3, t float32) ovr.Vector3 {
	return ovr.Vector3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

func quatConjugate(q ovr.Quaternion) ovr.Quaternion {
	return ovr.Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// quatRotateVector rotates v by q.
func quatRotateVector(q ovr.Quaternion, v ovr.Vector3) ovr.Vector3 {
	qv := ovr.Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := quatMultiply(quatMultiply(q, qv), quatConjugate(q))
	return ovr.Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

func subVec3(a, b ovr.Vector3) ovr.Vector3 {
	return ovr.Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
