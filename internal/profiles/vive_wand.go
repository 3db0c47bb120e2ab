package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// ViveWand describes the original HTC Vive wand controller.
var ViveWand = buildViveWand()

func buildViveWand() *Profile {
	legal := make(map[string]struct{})
	leftRightLegal(legal,
		"input/squeeze/click", "input/menu/click",
		"input/trigger/click", "input/trigger/value",
		"input/trackpad", "input/trackpad/x", "input/trackpad/y",
		"input/trackpad/click", "input/trackpad/touch",
		"input/grip/pose", "input/aim/pose", "output/haptic",
	)

	return &Profile{
		Path: "/interaction_profiles/htc/vive_controller",
		Properties: Properties{
			Model:                BothHands("vive_controller"),
			ControllerType:       "vive_controller",
			RenderModelName:      BothHands("vr_controller_vive_1_5"),
			RegisteredDeviceType: BothHands("htc/vive_controller"),
			SerialNumber:         BothHands("vive_controller"),
			TrackingSystemName:   "lighthouse",
			ManufacturerName:     "HTC",
			MainAxis:             MainAxisTrackpad,
			LegacyButtonMask: ovr.ButtonMask(ovr.ButtonSystem) | ovr.ButtonMask(ovr.ButtonApplicationMenu) |
				ovr.ButtonMask(ovr.ButtonGrip) | ovr.ButtonMask(ovr.ButtonSteamVRTouchpad) | ovr.ButtonMask(ovr.ButtonSteamVRTrigger),
		},
		TranslateMap: []PathTranslation{
			{From: "grip", To: "squeeze", Stop: true},
			{From: "trigger/pull", To: "trigger/value", Stop: true},
			{From: "trigger/click", To: "trigger/value", Stop: true},
			{From: "application_menu", To: "menu", Stop: true},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			AimPose:      leftRight("input/aim/pose"),
			Trigger:      leftRight("input/trigger/value"),
			TriggerClick: leftRight("input/trigger/click"),
			AppMenu:      leftRight("input/menu/click"),
			Squeeze:      leftRight("input/squeeze/click"),
			SqueezeClick: leftRight("input/squeeze/click"),
			MainXY:       leftRight("input/trackpad"),
			MainXYClick:  leftRight("input/trackpad/click"),
			MainXYTouch:  leftRight("input/trackpad/touch"),
		},
		Skeletal: SkeletalInputBindings{
			ThumbTouch: leftRight("input/trackpad/touch"),
			IndexCurl:  leftRight("input/trigger/value"),
			RestCurl:   leftRight("input/squeeze/click"),
		},
		OffsetGripPose: func(string) ovr.Matrix34 { return ovr.Identity() },
	}
}
