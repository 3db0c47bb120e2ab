package events

import "github.com/Supreeeme/xrizer/internal/ovr"

// PushDeviceActivation pushes TrackedDeviceActivated or
// TrackedDeviceDeactivated depending on connected, as emitted when an
// InteractionProfileChanged event flips a controller's connection
// state (spec §4.1, §4.8).
func (q *Queue) PushDeviceActivation(deviceIndex uint32, connected bool) {
	ty := ovr.EventTrackedDeviceDeactivated
	if connected {
		ty = ovr.EventTrackedDeviceActivated
	}
	q.Push(ovr.Event{Type: ty, TrackedDeviceIndex: deviceIndex})
}

// PushButtonTransition pushes a press/unpress or touch/untouch event
// for a legacy controller-state button-id transition.
func (q *Queue) PushButtonTransition(deviceIndex uint32, button ovr.ButtonID, touch, newState bool) {
	var ty ovr.EventType
	switch {
	case touch && newState:
		ty = ovr.EventButtonTouch
	case touch && !newState:
		ty = ovr.EventButtonUntouch
	case !touch && newState:
		ty = ovr.EventButtonPress
	default:
		ty = ovr.EventButtonUnpress
	}
	q.Push(ovr.Event{
		Type:               ty,
		TrackedDeviceIndex: deviceIndex,
		Controller:         ovr.EventDataController{Button: uint32(button)},
	})
}
