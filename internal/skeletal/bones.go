// Package skeletal fills in GetSkeletalBoneData/GetSkeletalSummaryData/
// GetSkeletalTrackingLevel: either by reordering XR_EXT_hand_tracking
// joints into the 31-bone OpenVR hand skeleton, or, when no hand
// tracker is active, by driving a curl/splay approximation from the
// legacy-style index_curl/rest_curl/thumb_touch bindings a profile
// declares.
package skeletal

import "github.com/Supreeeme/xrizer/internal/ovr"

// Bone indexes a 31-entry VRBoneTransform_t array, mirroring
// EBone/HandSkeletonBone.
type Bone int

const (
	BoneRoot Bone = iota
	BoneWrist
	BoneThumb0
	BoneThumb1
	BoneThumb2
	BoneThumb3
	BoneIndex0
	BoneIndex1
	BoneIndex2
	BoneIndex3
	BoneIndex4
	BoneMiddle0
	BoneMiddle1
	BoneMiddle2
	BoneMiddle3
	BoneMiddle4
	BoneRing0
	BoneRing1
	BoneRing2
	BoneRing3
	BoneRing4
	BonePinky0
	BonePinky1
	BonePinky2
	BonePinky3
	BonePinky4
	BoneAuxThumb
	BoneAuxIndex
	BoneAuxMiddle
	BoneAuxRing
	BoneAuxPinky
	BoneCount
)

// Finger names the five digits, for curl/splay table lookups.
type Finger int

const (
	FingerThumb Finger = iota
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
	fingerCount
)

// finger returns which Finger bone b belongs to, and false for the
// root/wrist/aux bones that are not part of a finger chain.
func finger(b Bone) (Finger, bool) {
	switch {
	case b >= BoneThumb0 && b <= BoneThumb3:
		return FingerThumb, true
	case b >= BoneIndex0 && b <= BoneIndex4:
		return FingerIndex, true
	case b >= BoneMiddle0 && b <= BoneMiddle4:
		return FingerMiddle, true
	case b >= BoneRing0 && b <= BoneRing4:
		return FingerRing, true
	case b >= BonePinky0 && b <= BonePinky4:
		return FingerPinky, true
	default:
		return 0, false
	}
}

// jointIndexInFinger returns a finger-chain bone's position within its
// chain (0 = metacarpal, nearest the wrist).
func jointIndexInFinger(b Bone) int {
	switch {
	case b >= BoneThumb0 && b <= BoneThumb3:
		return int(b - BoneThumb0)
	case b >= BoneIndex0 && b <= BoneIndex4:
		return int(b - BoneIndex0)
	case b >= BoneMiddle0 && b <= BoneMiddle4:
		return int(b - BoneMiddle0)
	case b >= BoneRing0 && b <= BoneRing4:
		return int(b - BoneRing0)
	case b >= BonePinky0 && b <= BonePinky4:
		return int(b - BonePinky0)
	default:
		return -1
	}
}

// restOpen and restFist are the local-space (parent-relative) bone
// transforms of a fully open hand and a fully closed fist; the curl
// estimator linearly blends between them per finger. Positions are
// expressed in meters, roughly to human hand scale.
var restOpen [BoneCount]ovr.Bone
var restFist [BoneCount]ovr.Bone

func init() {
	type seg struct {
		offset   ovr.Vector3
		curlAxis ovr.Vector3 // local rotation axis a blended curl angle is applied around
	}

	root := ovr.Bone{Position: ovr.Vector3{}, Rotation: identityQuat}
	restOpen[BoneRoot] = root
	restFist[BoneRoot] = root

	wrist := ovr.Bone{Position: ovr.Vector3{X: 0, Y: 0, Z: 0.02}, Rotation: identityQuat}
	restOpen[BoneWrist] = wrist
	restFist[BoneWrist] = wrist

	// fingerChains lists, per finger, the metacarpal-relative offsets
	// and curl axis for each of its four joints, and the maximum curl
	// angle (degrees) that joint reaches in a full fist.
	type joint struct {
		offset    ovr.Vector3
		maxCurl   float32
		curlAxis  ovr.Vector3
		baseSplay float32 // outward yaw at rest, degrees
	}
	fingerChains := map[Finger][4]joint{
		FingerThumb: {
			{offset: ovr.Vector3{X: 0.025, Y: -0.01, Z: 0.02}, maxCurl: 20, curlAxis: ovr.Vector3{Y: 1}, baseSplay: 35},
			{offset: ovr.Vector3{X: 0.03, Y: 0, Z: 0}, maxCurl: 40, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.025, Y: 0, Z: 0}, maxCurl: 60, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.02, Y: 0, Z: 0}, maxCurl: 0, curlAxis: ovr.Vector3{Z: 1}},
		},
		FingerIndex: {
			{offset: ovr.Vector3{X: 0.08, Y: 0, Z: 0.015}, maxCurl: 10, curlAxis: ovr.Vector3{Z: 1}, baseSplay: 8},
			{offset: ovr.Vector3{X: 0.04, Y: 0, Z: 0}, maxCurl: 90, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.025, Y: 0, Z: 0}, maxCurl: 100, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.018, Y: 0, Z: 0}, maxCurl: 80, curlAxis: ovr.Vector3{Z: 1}},
		},
		FingerMiddle: {
			{offset: ovr.Vector3{X: 0.085, Y: 0, Z: 0.005}, maxCurl: 5, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.045, Y: 0, Z: 0}, maxCurl: 95, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.028, Y: 0, Z: 0}, maxCurl: 100, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.02, Y: 0, Z: 0}, maxCurl: 80, curlAxis: ovr.Vector3{Z: 1}},
		},
		FingerRing: {
			{offset: ovr.Vector3{X: 0.08, Y: 0, Z: -0.005}, maxCurl: 5, curlAxis: ovr.Vector3{Z: 1}, baseSplay: -8},
			{offset: ovr.Vector3{X: 0.042, Y: 0, Z: 0}, maxCurl: 95, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.026, Y: 0, Z: 0}, maxCurl: 100, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.019, Y: 0, Z: 0}, maxCurl: 80, curlAxis: ovr.Vector3{Z: 1}},
		},
		FingerPinky: {
			{offset: ovr.Vector3{X: 0.075, Y: 0, Z: -0.015}, maxCurl: 10, curlAxis: ovr.Vector3{Z: 1}, baseSplay: -18},
			{offset: ovr.Vector3{X: 0.035, Y: 0, Z: 0}, maxCurl: 95, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.022, Y: 0, Z: 0}, maxCurl: 100, curlAxis: ovr.Vector3{Z: 1}},
			{offset: ovr.Vector3{X: 0.016, Y: 0, Z: 0}, maxCurl: 80, curlAxis: ovr.Vector3{Z: 1}},
		},
	}

	firstBone := map[Finger]Bone{
		FingerThumb:  BoneThumb0,
		FingerIndex:  BoneIndex0,
		FingerMiddle: BoneMiddle0,
		FingerRing:   BoneRing0,
		FingerPinky:  BonePinky0,
	}

	for f, chain := range fingerChains {
		for i, j := range chain {
			b := firstBone[f] + Bone(i)
			openRot := axisAngle(j.curlAxis, degToRad(j.baseSplay))
			fistRot := quatMultiply(axisAngle(j.curlAxis, degToRad(j.baseSplay)), axisAngle(j.curlAxis, degToRad(j.maxCurl)))
			restOpen[b] = ovr.Bone{Position: j.offset, Rotation: openRot}
			restFist[b] = ovr.Bone{Position: j.offset, Rotation: fistRot}
		}
	}

	// Aux bones are fixed reference poses (one per finger), independent
	// of curl; OpenVR apps use them for a stable per-finger anchor.
	auxBone := map[Finger]Bone{
		FingerThumb:  BoneAuxThumb,
		FingerIndex:  BoneAuxIndex,
		FingerMiddle: BoneAuxMiddle,
		FingerRing:   BoneAuxRing,
		FingerPinky:  BoneAuxPinky,
	}
	chainLen := map[Finger]int{
		FingerThumb:  len(fingerChains[FingerThumb]),
		FingerIndex:  len(fingerChains[FingerIndex]),
		FingerMiddle: len(fingerChains[FingerMiddle]),
		FingerRing:   len(fingerChains[FingerRing]),
		FingerPinky:  len(fingerChains[FingerPinky]),
	}
	for f, b := range auxBone {
		tip := firstBone[f] + Bone(chainLen[f]-1)
		restOpen[b] = restOpen[tip]
		restFist[b] = restFist[tip]
	}
}
