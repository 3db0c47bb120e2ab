package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// VRLinkHand describes the EXT_hand_interaction bare-hand profile: a
// skeletal-only device with no legacy bindings of its own.
var VRLinkHand = buildVRLinkHand()

func buildVRLinkHand() *Profile {
	return &Profile{
		Path: "/interaction_profiles/ext/hand_interaction_ext",
		Properties: Properties{
			Model:                HandString{Left: "VRLink Hand Tracker (Left Hand)", Right: "VRLink Hand Tracker (Right Hand)"},
			ControllerType:       "svl_hand_interaction_augmented",
			RenderModelName:      BothHands("{vrlink}/rendermodels/shuttlecock"),
			RegisteredDeviceType: HandString{Left: "vrlink/VRLINKQ_HandTracker_Left", Right: "vrlink/VRLINKQ_HandTracker_Right"},
			SerialNumber:         HandString{Left: "VRLINKQ_Hand_Left", Right: "VRLINKQ_Hand_Right"},
			TrackingSystemName:   "vrlink",
			ManufacturerName:     "VRLink",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonA) |
				ovr.ButtonMask(ovr.ButtonAxis0) | ovr.ButtonMask(ovr.ButtonAxis1) | ovr.ButtonMask(ovr.ButtonAxis2),
		},
		LegalPaths:     map[string]struct{}{},
		OffsetGripPose: func(string) ovr.Matrix34 { return ovr.Identity() },
	}
}
