// Package openxr defines the narrow interface the input/device
// translation core needs from an OpenXR runtime binding: instance
// creation of action sets/actions, session attach/sync, and space
// location. A real runtime binding (cgo or a first-party Go OpenXR
// wrapper) and the in-memory internal/openxr/fake test double both
// satisfy these interfaces; nothing in this package talks to a runtime
// directly.
package openxr

import "time"

// Path is the interned-string handle OpenXR calls xrPath; subaction
// paths (/user/hand/left, /user/hand/right) and unqualified "no
// subaction" are both expressed as a Path.
type Path uint64

// NullPath is the "no subaction" sentinel.
const NullPath Path = 0

// ActionType mirrors XrActionType.
type ActionType int

const (
	ActionTypeBoolean ActionType = iota + 1
	ActionTypeFloat
	ActionTypeVector2f
	ActionTypePose
	ActionTypeVibration
)

// ReferenceSpaceType mirrors the XrReferenceSpaceType values the core
// creates spaces against.
type ReferenceSpaceType int

const (
	ReferenceSpaceView ReferenceSpaceType = iota + 1
	ReferenceSpaceLocal
	ReferenceSpaceStage
)

// ActiveActionSet pairs an action set with the subaction path to
// restrict it to, mirroring XrActiveActionSet. A NullPath subaction
// path means "all subaction paths".
type ActiveActionSet struct {
	Set           ActionSet
	SubactionPath Path
}

// ActionStateBool mirrors XrActionStateBoolean.
type ActionStateBool struct {
	IsActive       bool
	CurrentState   bool
	Changed        bool
	LastChangeTime time.Time
}

// ActionStateFloat mirrors XrActionStateFloat.
type ActionStateFloat struct {
	IsActive       bool
	CurrentState   float32
	Changed        bool
	LastChangeTime time.Time
}

// ActionStateVector2f mirrors XrActionStateVector2f.
type ActionStateVector2f struct {
	IsActive       bool
	X, Y           float32
	Changed        bool
	LastChangeTime time.Time
}

// SpaceLocation mirrors XrSpaceLocation: a located space's pose plus
// validity/tracking flags for this call.
type SpaceLocation struct {
	PositionValid      bool
	PositionTracked    bool
	OrientationValid   bool
	OrientationTracked bool
	Position           Vector3
	Orientation        Quaternion
	LinearVelocity     Vector3
	AngularVelocity    Vector3
}

// Vector3 is a 3-component float vector in OpenXR's right-handed,
// meters-based coordinate convention.
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is a standard x,y,z,w rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}

// HapticVibration mirrors XrHapticVibration.
type HapticVibration struct {
	Duration  time.Duration
	Frequency float32
	Amplitude float32
}
