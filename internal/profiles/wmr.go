package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// Windows Mixed Reality motion controllers (Microsoft's reference
// design, HP's Reverb G2, and Samsung's Odyssey) share one legal-path
// set, translate map, and legacy/skeletal bindings; only the model
// strings and grip offset differ.

func buildWMRBase(profilePath, controllerType, renderModel, registeredLeft, registeredRight, serialLeft, serialRight string, offset func(hand string) ovr.Matrix34) *Profile {
	legal := make(map[string]struct{})
	leftRightLegal(legal,
		"input/menu/click", "input/squeeze/click", "input/trigger/value",
		"input/thumbstick/x", "input/thumbstick/y", "input/thumbstick/click", "input/thumbstick",
		"input/trackpad/x", "input/trackpad/y", "input/trackpad/click", "input/trackpad/touch", "input/trackpad",
		"input/grip/pose", "input/aim/pose", "output/haptic",
	)

	return &Profile{
		Path: profilePath,
		Properties: Properties{
			Model:                BothHands("WindowsMR"),
			ControllerType:       controllerType,
			RenderModelName:      BothHands(renderModel),
			RegisteredDeviceType: HandString{Left: registeredLeft, Right: registeredRight},
			SerialNumber:         HandString{Left: serialLeft, Right: serialRight},
			TrackingSystemName:   "holographic",
			ManufacturerName:     "WindowsMR",
			MainAxis:             MainAxisThumbstick,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonA) |
				ovr.ButtonMask(ovr.ButtonAxis0) | ovr.ButtonMask(ovr.ButtonAxis1) | ovr.ButtonMask(ovr.ButtonAxis2),
		},
		TranslateMap: []PathTranslation{
			{From: "pull", To: "value"},
			{From: "input/grip", To: "input/squeeze"},
			{From: "trigger/click", To: "trigger/value", Stop: true},
			{From: "joystick", To: "thumbstick"},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			Trigger:      leftRight("input/trigger/value"),
			TriggerClick: leftRight("input/trigger/value"),
			AppMenu:      leftRight("input/menu/click"),
			A:            leftRight("input/trackpad/click"),
			Squeeze:      leftRight("input/squeeze/click"),
			SqueezeClick: leftRight("input/squeeze/click"),
			MainXY:       leftRight("input/thumbstick"),
			MainXYClick:  leftRight("input/thumbstick/click"),
		},
		Skeletal: SkeletalInputBindings{
			ThumbTouch: leftRight("input/trackpad/touch"),
			IndexTouch: leftRight("input/trigger/value"),
			IndexCurl:  leftRight("input/trigger/value"),
			RestCurl:   leftRight("input/squeeze/click"),
		},
		OffsetGripPose: offset,
	}
}

// MicrosoftMotionController is Microsoft's reference WMR controller.
var MicrosoftMotionController = buildWMRBase(
	"/interaction_profiles/microsoft/motion_controller",
	"holographic_controller", "holographic_controller",
	"WindowsMR/holographic_controllerLHR-00000001", "WindowsMR/holographic_controllerLHR-00000002",
	"holographic_controllerLHR-00000001", "holographic_controllerLHR-00000002",
	func(string) ovr.Matrix34 { return ovr.FromEulerDegreesTranslation(0, 0, 0, 0, 0.026310, -0.078693) },
)

// HPReverbG2 is the HP Reverb G2 motion controller.
var HPReverbG2 = buildWMRBase(
	"/interaction_profiles/hp/mixed_reality_controller",
	"hpmotioncontroller", "hpmotioncontroller",
	"WindowsMR/hpmotioncontrollerLHR-00000001", "WindowsMR/hpmotioncontrollerLHR-00000002",
	"hpmotioncontrollerLHR-00000001", "hpmotioncontrollerLHR-00000002",
	func(string) ovr.Matrix34 { return ovr.FromEulerDegreesTranslation(0, 0, 0, 0, 0.026310, -0.078693) },
)

// SamsungOdyssey is the Samsung Odyssey motion controller; it shares
// every descriptor field with MicrosoftMotionController except the
// profile path and grip offset.
var SamsungOdyssey = buildSamsungOdyssey()

func buildSamsungOdyssey() *Profile {
	p := *MicrosoftMotionController
	p.Path = "/interaction_profiles/samsung/odyssey_controller"
	p.OffsetGripPose = func(string) ovr.Matrix34 {
		return ovr.FromEulerDegreesTranslation(0, 0, 0, 0, 0.079738, -0.035449)
	}
	return &p
}
