package skeletal

import (
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

// jointForBone maps an OpenVR bone to the XR_EXT_hand_tracking joint
// it is sourced from; bones absent from the map (the aux reference
// bones) are derived instead of located directly.
var jointForBone = map[Bone]openxr.HandJoint{
	BoneRoot:  openxr.HandJointPalm,
	BoneWrist: openxr.HandJointWrist,

	BoneThumb0: openxr.HandJointThumbMetacarpal,
	BoneThumb1: openxr.HandJointThumbProximal,
	BoneThumb2: openxr.HandJointThumbDistal,
	BoneThumb3: openxr.HandJointThumbTip,

	BoneIndex0: openxr.HandJointIndexMetacarpal,
	BoneIndex1: openxr.HandJointIndexProximal,
	BoneIndex2: openxr.HandJointIndexIntermediate,
	BoneIndex3: openxr.HandJointIndexDistal,
	BoneIndex4: openxr.HandJointIndexTip,

	BoneMiddle0: openxr.HandJointMiddleMetacarpal,
	BoneMiddle1: openxr.HandJointMiddleProximal,
	BoneMiddle2: openxr.HandJointMiddleIntermediate,
	BoneMiddle3: openxr.HandJointMiddleDistal,
	BoneMiddle4: openxr.HandJointMiddleTip,

	BoneRing0: openxr.HandJointRingMetacarpal,
	BoneRing1: openxr.HandJointRingProximal,
	BoneRing2: openxr.HandJointRingIntermediate,
	BoneRing3: openxr.HandJointRingDistal,
	BoneRing4: openxr.HandJointRingTip,

	BonePinky0: openxr.HandJointLittleMetacarpal,
	BonePinky1: openxr.HandJointLittleProximal,
	BonePinky2: openxr.HandJointLittleIntermediate,
	BonePinky3: openxr.HandJointLittleDistal,
	BonePinky4: openxr.HandJointLittleTip,
}

// parentOf returns b's parent in the bone hierarchy, used to convert
// the hand tracker's base-space joint poses into OpenVR's
// parent-relative VRBoneTransform_t convention. BoneRoot has no parent.
func parentOf(b Bone) (Bone, bool) {
	if b == BoneRoot {
		return 0, false
	}
	if b == BoneWrist {
		return BoneRoot, true
	}
	if _, ok := finger(b); ok {
		if jointIndexInFinger(b) == 0 {
			return BoneWrist, true
		}
		return b - 1, true
	}
	// Aux bones are reference poses, not part of the located chain.
	return BoneWrist, true
}

func toOvrVec3(v openxr.Vector3) ovr.Vector3 { return ovr.Vector3{X: v.X, Y: v.Y, Z: v.Z} }

func toOvrQuat(q openxr.Quaternion) ovr.Quaternion {
	return ovr.Quaternion{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// bonesFromJoints reorders a hand tracker's 26 located joints into the
// 31-bone OpenVR layout, converting each bone's world (base-space)
// pose into a pose relative to its parent bone.
func bonesFromJoints(joints openxr.HandJointLocations) [BoneCount]ovr.Bone {
	worldPos := make(map[Bone]ovr.Vector3, BoneCount)
	worldRot := make(map[Bone]ovr.Quaternion, BoneCount)

	for b, j := range jointForBone {
		loc := joints[j]
		worldPos[b] = toOvrVec3(loc.Position)
		worldRot[b] = toOvrQuat(loc.Orientation)
	}
	// Aux bones mirror their finger's tip pose.
	for f, tip := range map[Finger]Bone{
		FingerThumb:  BoneThumb3,
		FingerIndex:  BoneIndex4,
		FingerMiddle: BoneMiddle4,
		FingerRing:   BoneRing4,
		FingerPinky:  BonePinky4,
	} {
		aux := auxBoneFor(f)
		worldPos[aux] = worldPos[tip]
		worldRot[aux] = worldRot[tip]
	}

	var out [BoneCount]ovr.Bone
	out[BoneRoot] = ovr.Bone{Position: worldPos[BoneRoot], Rotation: worldRot[BoneRoot]}
	for b := BoneWrist; b < BoneCount; b++ {
		parent, ok := parentOf(b)
		if !ok {
			continue
		}
		pPos, pRot := worldPos[parent], worldRot[parent]
		invPRot := quatConjugate(pRot)
		localPos := quatRotateVector(invPRot, subVec3(worldPos[b], pPos))
		localRot := quatMultiply(invPRot, worldRot[b])
		out[b] = ovr.Bone{Position: localPos, Rotation: localRot}
	}
	return out
}

func auxBoneFor(f Finger) Bone {
	switch f {
	case FingerThumb:
		return BoneAuxThumb
	case FingerIndex:
		return BoneAuxIndex
	case FingerMiddle:
		return BoneAuxMiddle
	case FingerRing:
		return BoneAuxRing
	default:
		return BoneAuxPinky
	}
}
