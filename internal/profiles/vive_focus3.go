package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// ViveFocus3 describes the HTC Vive Focus 3 controller.
var ViveFocus3 = buildViveFocus3()

func buildViveFocus3() *Profile {
	legal := make(map[string]struct{})
	leftRightLegal(legal,
		"input/squeeze/value", "input/squeeze/click", "input/squeeze/touch",
		"input/trigger/value", "input/trigger/click", "input/trigger/touch",
		"input/thumbstick", "input/thumbstick/x", "input/thumbstick/y",
		"input/thumbstick/click", "input/thumbstick/touch", "input/thumbrest/touch",
		"input/grip/pose", "input/aim/pose", "output/haptic",
	)
	legal["/user/hand/left/input/x/click"] = struct{}{}
	legal["/user/hand/left/input/y/click"] = struct{}{}
	legal["/user/hand/left/input/menu/click"] = struct{}{}
	legal["/user/hand/right/input/a/click"] = struct{}{}
	legal["/user/hand/right/input/b/click"] = struct{}{}

	return &Profile{
		Path: "/interaction_profiles/htc/vive_focus3_controller",
		Properties: Properties{
			Model:                BothHands("vive_focus3_controller"),
			ControllerType:       "vive_focus3_controller",
			RenderModelName:      HandString{Left: "vive_focus3_controller_left", Right: "vive_focus3_controller_right"},
			RegisteredDeviceType: BothHands("htc_business_streaming/vive_focus3_controller"),
			SerialNumber:         HandString{Left: "CTL_LEFT", Right: "CTL_RIGHT"},
			TrackingSystemName:   "htc_eyes",
			ManufacturerName:     "htc_rr",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonA) |
				ovr.ButtonMask(ovr.ButtonAxis1) | ovr.ButtonMask(ovr.ButtonAxis2) |
				ovr.ButtonMask(ovr.ButtonAxis3) | ovr.ButtonMask(ovr.ButtonAxis4),
		},
		TranslateMap: []PathTranslation{
			{From: "x/touch", To: "x/click", Stop: true},
			{From: "y/touch", To: "y/click", Stop: true},
			{From: "a/touch", To: "a/click", Stop: true},
			{From: "b/touch", To: "b/click", Stop: true},
			{From: "input/grip", To: "input/squeeze"},
			{From: "pull", To: "value", Stop: true},
			{From: "application_menu", To: "menu", Stop: true},
			{From: "joystick", To: "thumbstick", Stop: true},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			Trigger:      leftRight("input/trigger/value"),
			TriggerClick: leftRight("input/trigger/click"),
			AppMenu:      []string{"/user/hand/left/input/y/click", "/user/hand/right/input/b/click"},
			A:            []string{"/user/hand/left/input/x/click", "/user/hand/right/input/a/click"},
			SqueezeClick: leftRight("input/squeeze/click"),
			Squeeze:      leftRight("input/squeeze/value"),
			MainXY:       leftRight("input/thumbstick"),
			MainXYClick:  leftRight("input/thumbstick/click"),
			MainXYTouch:  leftRight("input/thumbstick/touch"),
		},
		Skeletal: SkeletalInputBindings{
			ThumbTouch: append(leftRight("input/thumbstick/touch"), append(leftRight("input/thumbrest/touch"),
				"/user/hand/left/input/x/click", "/user/hand/left/input/y/click",
				"/user/hand/right/input/a/click", "/user/hand/right/input/b/click")...),
			IndexTouch: leftRight("input/trigger/touch"),
			IndexCurl:  leftRight("input/trigger/value"),
			RestCurl:   leftRight("input/squeeze/value"),
		},
		OffsetGripPose: func(hand string) ovr.Matrix34 {
			if hand == "right" {
				return ovr.FromEulerDegreesTranslation(20.6, 0, 0, -0.007, -0.00182941, 0.1019482).Inverse()
			}
			return ovr.FromEulerDegreesTranslation(20.6, 0, 0, 0.007, -0.00182941, 0.1019482).Inverse()
		},
	}
}
