package profiles

// All returns every known profile, in a stable order, for iteration
// when suggesting bindings across the full device catalog.
func All() []*Profile {
	return []*Profile{
		Knuckles,
		ViveWand,
		ViveFocus3,
		ViveTracker,
		OculusTouch,
		MicrosoftMotionController,
		HPReverbG2,
		SamsungOdyssey,
		SimpleController,
		VRLinkHand,
	}
}

// ByPath looks up the descriptor for an OpenXR interaction-profile
// path, as reported by xrGetCurrentInteractionProfile. Unknown paths
// fall back to SimpleController, the khr/simple_controller profile
// every OpenXR runtime is required to support.
func ByPath(path string) *Profile {
	for _, p := range All() {
		if p.Path == path {
			return p
		}
	}
	return SimpleController
}
