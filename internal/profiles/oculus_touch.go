package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// OculusTouch describes the Oculus/Meta Touch controller.
var OculusTouch = buildOculusTouch()

func buildOculusTouch() *Profile {
	legal := make(map[string]struct{})
	leftRightLegal(legal,
		"input/squeeze/value", "input/trigger/value", "input/trigger/touch",
		"input/thumbstick", "input/thumbstick/x", "input/thumbstick/y",
		"input/thumbstick/click", "input/thumbstick/touch", "input/thumbrest/touch",
		"input/grip/pose", "input/aim/pose", "output/haptic",
	)
	legal["/user/hand/left/input/x/click"] = struct{}{}
	legal["/user/hand/left/input/x/touch"] = struct{}{}
	legal["/user/hand/left/input/y/click"] = struct{}{}
	legal["/user/hand/left/input/y/touch"] = struct{}{}
	legal["/user/hand/left/input/menu/click"] = struct{}{}
	legal["/user/hand/right/input/a/click"] = struct{}{}
	legal["/user/hand/right/input/a/touch"] = struct{}{}
	legal["/user/hand/right/input/b/click"] = struct{}{}
	legal["/user/hand/right/input/b/touch"] = struct{}{}

	return &Profile{
		Path: "/interaction_profiles/oculus/touch_controller",
		Properties: Properties{
			Model:                HandString{Left: "Miramar (Left Controller)", Right: "Miramar (Right Controller)"},
			ControllerType:       "oculus_touch",
			RenderModelName:      HandString{Left: "oculus_quest_controller_left", Right: "oculus_quest_controller_right"},
			RegisteredDeviceType: HandString{Left: "oculus/WMHD315M3010GV_Controller_Left", Right: "oculus/WMHD315M3010GV_Controller_Right"},
			SerialNumber:         HandString{Left: "WMHD315M3010GV_Controller_Left", Right: "WMHD315M3010GV_Controller_Right"},
			TrackingSystemName:   "oculus",
			ManufacturerName:     "Oculus",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonA) |
				ovr.ButtonMask(ovr.ButtonAxis0) | ovr.ButtonMask(ovr.ButtonAxis1) | ovr.ButtonMask(ovr.ButtonAxis2),
		},
		TranslateMap: []PathTranslation{
			{From: "trigger/click", To: "trigger/value", Stop: true},
			{From: "grip/click", To: "squeeze/value", Stop: true},
			{From: "grip/pull", To: "squeeze/value", Stop: true},
			{From: "trigger/pull", To: "trigger/value", Stop: true},
			{From: "application_menu", To: "menu", Stop: true},
			{From: "joystick", To: "thumbstick", Stop: true},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			Trigger:      leftRight("input/trigger/value"),
			TriggerClick: leftRight("input/trigger/value"),
			AppMenu:      []string{"/user/hand/left/input/y/click", "/user/hand/right/input/b/click"},
			A:            []string{"/user/hand/left/input/x/click", "/user/hand/right/input/a/click"},
			Squeeze:      leftRight("input/squeeze/value"),
			SqueezeClick: leftRight("input/squeeze/value"),
			MainXY:       leftRight("input/thumbstick"),
			MainXYClick:  leftRight("input/thumbstick/click"),
			MainXYTouch:  leftRight("input/thumbstick/touch"),
		},
		Skeletal: SkeletalInputBindings{
			ThumbTouch: append(leftRight("input/thumbstick/touch"), append(leftRight("input/thumbrest/touch"),
				"/user/hand/left/input/x/touch", "/user/hand/left/input/y/touch",
				"/user/hand/right/input/a/touch", "/user/hand/right/input/b/touch")...),
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
