package devices

import (
	"strconv"

	"github.com/Supreeeme/xrizer/internal/ovr"
)

// GetStringProperty looks up a string property on the device's active
// profile. The live HMD IPD/refresh-rate slots are float properties,
// read by GetFloatProperty.
func (d *Device) GetStringProperty(prop ovr.TrackedDeviceProperty) (string, *ovr.Error) {
	const op = "GetStringTrackedDeviceProperty"
	if !d.Connected() {
		return "", ovr.NewInvalidDevice(op)
	}
	p, ok := d.Profile()
	if !ok {
		return "", ovr.NewUnknownProperty(op)
	}
	hand := string(d.hand)
	switch prop {
	case ovr.PropTrackingSystemNameString:
		return p.Properties.TrackingSystemName, nil
	case ovr.PropModelNumberString:
		return p.Properties.Model.Value(hand), nil
	case ovr.PropSerialNumberString:
		return p.Properties.SerialNumber.Value(hand), nil
	case ovr.PropRenderModelNameString:
		return p.Properties.RenderModelName.Value(hand), nil
	case ovr.PropManufacturerNameString:
		return p.Properties.ManufacturerName, nil
	case ovr.PropControllerTypeString:
		return p.Properties.ControllerType, nil
	case ovr.PropInputProfilePathString:
		return "{" + p.Properties.ControllerType + "}/input/" + p.Properties.ControllerType + "_profile.json", nil
	default:
		return "", ovr.NewUnknownProperty(op)
	}
}

// GetBoolProperty looks up a boolean property.
func (d *Device) GetBoolProperty(prop ovr.TrackedDeviceProperty) (bool, *ovr.Error) {
	const op = "GetBoolTrackedDeviceProperty"
	if !d.Connected() {
		return false, ovr.NewInvalidDevice(op)
	}
	switch prop {
	case ovr.PropDeviceIsWireless:
		return true, nil
	case ovr.PropDeviceIsCharging:
		return false, nil
	case ovr.PropWillDriftInYaw:
		return false, nil
	default:
		return false, ovr.NewUnknownProperty(op)
	}
}

// GetInt32Property looks up an int32 property.
func (d *Device) GetInt32Property(prop ovr.TrackedDeviceProperty) (int32, *ovr.Error) {
	const op = "GetInt32TrackedDeviceProperty"
	if !d.Connected() {
		return 0, ovr.NewInvalidDevice(op)
	}
	switch prop {
	case ovr.PropDeviceClassInt32:
		return int32(d.class), nil
	case ovr.PropControllerRoleHintInt32:
		return int32(d.role), nil
	case ovr.PropNumCamerasInt32:
		return 0, nil
	default:
		return 0, ovr.NewUnknownProperty(op)
	}
}

// GetUint64Property looks up a uint64 property.
func (d *Device) GetUint64Property(prop ovr.TrackedDeviceProperty) (uint64, *ovr.Error) {
	const op = "GetUint64TrackedDeviceProperty"
	if !d.Connected() {
		return 0, ovr.NewInvalidDevice(op)
	}
	p, ok := d.Profile()
	if !ok {
		return 0, ovr.NewUnknownProperty(op)
	}
	switch prop {
	case ovr.PropSupportedButtonsUint64:
		return p.Properties.LegacyButtonMask, nil
	default:
		return 0, ovr.NewUnknownProperty(op)
	}
}

// GetFloatProperty looks up a float property, including the live HMD
// metrics that bypass the profile descriptor entirely.
func (d *Device) GetFloatProperty(prop ovr.TrackedDeviceProperty) (float32, *ovr.Error) {
	const op = "GetFloatTrackedDeviceProperty"
	if !d.Connected() {
		return 0, ovr.NewInvalidDevice(op)
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	switch prop {
	case ovr.PropUserIpdMetersFloat:
		if d.ipdMeters == nil {
			return 0, ovr.NewUnknownProperty(op)
		}
		return *d.ipdMeters, nil
	case ovr.PropDisplayFrequencyFloat:
		if d.displayHz == nil {
			return 0, ovr.NewUnknownProperty(op)
		}
		return *d.displayHz, nil
	case ovr.PropDeviceBatteryPercentageFloat:
		return 1.0, nil
	default:
		return 0, ovr.NewUnknownProperty(op)
	}
}

// debugString renders a human-readable property value, trying the
// string, int32 and uint64 getters in turn.
func (d *Device) debugString(prop ovr.TrackedDeviceProperty) string {
	if s, err := d.GetStringProperty(prop); err == nil {
		return s
	}
	if i, err := d.GetInt32Property(prop); err == nil {
		return strconv.Itoa(int(i))
	}
	if u, err := d.GetUint64Property(prop); err == nil {
		return strconv.FormatUint(u, 10)
	}
	return "<unknown>"
}
