package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// SimpleController is the khr/simple_controller fallback profile, used
// when a runtime reports a bound profile xrizer has no dedicated
// descriptor for.
var SimpleController = buildSimpleController()

func buildSimpleController() *Profile {
	legal := make(map[string]struct{})
	leftRightLegal(legal, "input/select/click", "input/menu/click", "input/grip/pose", "input/aim/pose", "output/haptic")

	return &Profile{
		Path: "/interaction_profiles/khr/simple_controller",
		Properties: Properties{
			Model:              BothHands("<unknown>"),
			ControllerType:     "generic",
			RenderModelName:    BothHands("generic_controller"),
			TrackingSystemName: "<unknown>",
			ManufacturerName:   "<unknown>",
			MainAxis:           MainAxisTrackpad,
			LegacyButtonMask:   ovr.ButtonMask(ovr.ButtonApplicationMenu),
		},
		TranslateMap: []PathTranslation{
			{From: "trigger", To: "select", Stop: true},
			{From: "application_menu", To: "menu", Stop: true},
		},
		LegalPaths: legal,
		Legacy: LegacyBindings{
			GripPose:     leftRight("input/grip/pose"),
			AimPose:      leftRight("input/aim/pose"),
			Trigger:      leftRight("input/select/click"),
			TriggerClick: leftRight("input/select/click"),
			AppMenu:      leftRight("input/menu/click"),
			Squeeze:      leftRight("input/menu/click"),
		},
		OffsetGripPose: func(string) ovr.Matrix34 { return ovr.Identity() },
	}
}
