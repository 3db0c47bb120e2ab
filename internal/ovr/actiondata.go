package ovr

// ActionSetHandle, ActionHandle, and InputSourceHandle are the three
// opaque handle kinds exposed to the host. 0 is reserved as "invalid"
// in all three spaces.
type (
	ActionSetHandle   uint64
	ActionHandle      uint64
	InputSourceHandle uint64
)

// InvalidHandle is the reserved invalid value shared by all handle kinds.
const InvalidHandle uint64 = 0

// InputDigitalActionData is the wire shape of InputDigitalActionData_t.
type InputDigitalActionData struct {
	Active       bool
	ActiveOrigin InputSourceHandle
	State        bool
	Changed      bool
	UpdateTime   float32
}

// InputAnalogActionData is the wire shape of InputAnalogActionData_t.
type InputAnalogActionData struct {
	Active       bool
	ActiveOrigin InputSourceHandle
	X, Y, Z      float32
	DeltaX       float32
	DeltaY       float32
	DeltaZ       float32
	UpdateTime   float32
}

// InputPoseActionData is the wire shape of InputPoseActionData_t.
type InputPoseActionData struct {
	Active bool
	Pose   TrackedDevicePose
}

// InputOriginInfo is the wire shape of InputOriginInfo_t.
type InputOriginInfo struct {
	DeviceHandle             InputSourceHandle
	TrackedDevice            uint32
	RenderModelComponentName string
}

// SkeletalTrackingLevel mirrors EVRSkeletalTrackingLevel.
type SkeletalTrackingLevel int32

const (
	SkeletalTrackingLevelEstimated SkeletalTrackingLevel = iota
	SkeletalTrackingLevelPartial
	SkeletalTrackingLevelFull
)

// SkeletalSummaryData is the wire shape of VRSkeletalSummaryData_t: one
// aggregate curl/splay value per finger.
type SkeletalSummaryData struct {
	FingerCurl  [5]float32
	FingerSplay [4]float32
}

// Bone mirrors VRBoneTransform_t: a single joint's local-space pose.
type Bone struct {
	Position Vector3
	Rotation Quaternion
}

// Quaternion is a standard x,y,z,w quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}
