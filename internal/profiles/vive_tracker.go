package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// ViveTracker describes a Vive Tracker operating as a handheld object;
// it carries no legal binding paths of its own since trackers are
// addressed through internal/devices rather than through action
// bindings.
var ViveTracker = buildViveTracker()

func buildViveTracker() *Profile {
	return &Profile{
		Path: "/interaction_profiles/htc/vive_tracker_htcx",
		Properties: Properties{
			Model:                BothHands("Vive Tracker Handheld Object"),
			ControllerType:       "vive_tracker_handheld_object",
			RenderModelName:      BothHands("vive_tracker"),
			RegisteredDeviceType: BothHands("vive_tracker"),
			SerialNumber:         BothHands("vive_tracker"),
			TrackingSystemName:   "lighthouse",
			ManufacturerName:     "HTC",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask:     0,
		},
		LegalPaths:     map[string]struct{}{},
		OffsetGripPose: func(string) ovr.Matrix34 { return ovr.Identity() },
	}
}
