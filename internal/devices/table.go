package devices

import (
	"sync"

	"github.com/Supreeeme/xrizer/internal/ovr"
)

// Table is the tracked-device index space for one session: index 0 is
// always the HMD, 1 and 2 are the left/right controllers, and
// trackers fill subsequent indices in enumeration order, capped at
// ovr.MaxTrackedDeviceCount (spec §4.2).
type Table struct {
	mu      sync.RWMutex
	devices []*Device
}

// NewTable returns a Table pre-populated with an always-connected HMD
// and disconnected left/right controllers.
func NewTable() *Table {
	return &Table{
		devices: []*Device{
			{index: ovr.DeviceIndexHmd, class: ovr.TrackedDeviceClassHMD, connected: true},
			{index: ovr.DeviceIndexLeftHand, class: ovr.TrackedDeviceClassController, role: ovr.ControllerRoleLeftHand, hand: HandLeft},
			{index: ovr.DeviceIndexRightHand, class: ovr.TrackedDeviceClassController, role: ovr.ControllerRoleRightHand, hand: HandRight},
		},
	}
}

// Device returns the device at index, if within range.
func (t *Table) Device(index uint32) (*Device, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index >= uint32(len(t.devices)) {
		return nil, false
	}
	return t.devices[index], true
}

// HMD returns the HMD device.
func (t *Table) HMD() *Device {
	d, _ := t.Device(ovr.DeviceIndexHmd)
	return d
}

// Controller returns the left or right controller device.
func (t *Table) Controller(hand Hand) *Device {
	if hand == HandLeft {
		d, _ := t.Device(ovr.DeviceIndexLeftHand)
		return d
	}
	d, _ := t.Device(ovr.DeviceIndexRightHand)
	return d
}

// AddTracker appends a generic-tracker device and returns it, or nil
// if the table is already at ovr.MaxTrackedDeviceCount.
func (t *Table) AddTracker() *Device {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.devices) >= ovr.MaxTrackedDeviceCount {
		return nil
	}
	d := &Device{
		index: uint32(len(t.devices)),
		class: ovr.TrackedDeviceClassGenericTracker,
	}
	t.devices = append(t.devices, d)
	return d
}

// Len returns the number of device slots currently allocated.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.devices)
}

// Range calls fn for every device slot in index order.
func (t *Table) Range(fn func(*Device)) {
	t.mu.RLock()
	devices := append([]*Device(nil), t.devices...)
	t.mu.RUnlock()
	for _, d := range devices {
		fn(d)
	}
}

// GetTrackedDeviceClass returns a device's class, or
// TrackedDeviceClassInvalid if index is out of range.
func (t *Table) GetTrackedDeviceClass(index uint32) ovr.TrackedDeviceClass {
	d, ok := t.Device(index)
	if !ok {
		return ovr.TrackedDeviceClassInvalid
	}
	return d.Class()
}

// IsConnected reports whether a device index is within range and
// connected.
func (t *Table) IsConnected(index uint32) bool {
	d, ok := t.Device(index)
	return ok && d.Connected()
}
