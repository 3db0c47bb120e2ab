package diagnostics

import (
	"fmt"

	"github.com/Supreeeme/xrizer/internal/devices"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

// classLabel renders a device's ETrackedDeviceClass for display; ovr
// itself has no String method on the type, since nothing in the core
// needs one.
func classLabel(d *devices.Device) string {
	switch d.Class() {
	case ovr.TrackedDeviceClassHMD:
		return "hmd"
	case ovr.TrackedDeviceClassController:
		return "controller"
	case ovr.TrackedDeviceClassGenericTracker:
		return "generic_tracker"
	case ovr.TrackedDeviceClassTrackingReference:
		return "tracking_reference"
	case ovr.TrackedDeviceClassDisplayRedirect:
		return "display_redirect"
	default:
		return "invalid"
	}
}

// roleLabel renders a device's ETrackedControllerRole for display.
func roleLabel(d *devices.Device) string {
	switch d.Role() {
	case ovr.ControllerRoleLeftHand:
		return "left_hand"
	case ovr.ControllerRoleRightHand:
		return "right_hand"
	case ovr.ControllerRoleOptOut:
		return "opt_out"
	case ovr.ControllerRoleTreadmill:
		return "treadmill"
	case ovr.ControllerRoleStylus:
		return "stylus"
	default:
		return ""
	}
}

// eventTypeLabel renders an event's EventType for display.
func eventTypeLabel(t ovr.EventType) string {
	switch t {
	case ovr.EventTrackedDeviceActivated:
		return "device_activated"
	case ovr.EventTrackedDeviceDeactivated:
		return "device_deactivated"
	case ovr.EventTrackedDeviceUpdated:
		return "device_updated"
	case ovr.EventButtonPress:
		return "button_press"
	case ovr.EventButtonUnpress:
		return "button_unpress"
	case ovr.EventButtonTouch:
		return "button_touch"
	case ovr.EventButtonUntouch:
		return "button_untouch"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}
