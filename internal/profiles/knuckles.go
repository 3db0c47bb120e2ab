package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// Knuckles describes Valve's Index Controller ("Knuckles").
var Knuckles = buildKnuckles()

func buildKnuckles() *Profile {
	legal := make(map[string]struct{})
	for _, base := range []string{"input/a", "input/b", "input/trigger", "input/thumbstick"} {
		leftRightLegal(legal, base+"/click", base+"/touch")
	}
	for _, base := range []string{"input/thumbstick", "input/trackpad"} {
		leftRightLegal(legal, base+"/x", base+"/y", base)
	}
	leftRightLegal(legal,
		"input/squeeze/value", "input/squeeze/force",
		"input/trigger/value", "input/trackpad/force", "input/trackpad/touch",
		"input/grip/pose", "input/aim/pose", "output/haptic",
	)

	return &Profile{
		Path: "/interaction_profiles/valve/index_controller",
		Properties: Properties{
			Model:                HandString{Left: "Knuckles Left", Right: "Knuckles Right"},
			ControllerType:       "knuckles",
			RenderModelName:      HandString{Left: "{indexcontroller}valve_controller_knu_1_0_left", Right: "{indexcontroller}valve_controller_knu_1_0_right"},
			RegisteredDeviceType: HandString{Left: "valve/index_controllerLHR-FFFFFFF1", Right: "valve/index_controllerLHR-FFFFFFF2"},
			SerialNumber:         HandString{Left: "LHR-FFFFFFF1", Right: "LHR-FFFFFFF2"},
			TrackingSystemName:   "lighthouse",
			ManufacturerName:     "Valve",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonA) |
				ovr.ButtonMask(ovr.ButtonAxis0) | ovr.ButtonMask(ovr.ButtonAxis1) | ovr.ButtonMask(ovr.ButtonAxis2),
		},
		TranslateMap: []PathTranslation{
			{From: "pull", To: "value"},
			{From: "input/grip", To: "input/squeeze"},
			{From: "squeeze/click", To: "squeeze/value", Stop: true},
			{From: "squeeze/touch", To: "squeeze/value", Stop: true},
			{From: "squeeze/grab", To: "squeeze/force", Stop: true},
			{From: "trackpad/click", To: "trackpad/force", Stop: true},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			AppMenu:      leftRight("input/b/click"),
			A:            leftRight("input/a/click"),
			Trigger:      leftRight("input/trigger/value"),
			TriggerClick: leftRight("input/trigger/click"),
			Squeeze:      leftRight("input/squeeze/value"),
			SqueezeClick: leftRight("input/squeeze/value"),
			MainXY:       leftRight("input/thumbstick"),
			MainXYClick:  leftRight("input/thumbstick/click"),
			MainXYTouch:  leftRight("input/thumbstick/touch"),
		},
		Skeletal: SkeletalInputBindings{
			ThumbTouch: append(leftRight("input/thumbstick/touch"), leftRight("input/trackpad/touch")...),
			IndexTouch: leftRight("input/trigger/touch"),
			IndexCurl:  leftRight("input/trigger/value"),
			RestCurl:   leftRight("input/squeeze/value"),
		},
		OffsetGripPose: func(hand string) ovr.Matrix34 {
			if hand == "right" {
				return ovr.FromEulerDegreesTranslation(15.392, 2.071, -0.303, 0, -0.015, 0.13).Inverse()
			}
			return ovr.FromEulerDegreesTranslation(15.392, -2.071, 0.303, 0, -0.015, 0.13).Inverse()
		},
	}
}
