// Package devices maps OpenVR tracked-device indices onto the active
// interaction profile for each, and answers connection-state and
// property queries routed through that profile.
package devices

import (
	"fmt"
	"sync"

	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// Hand identifies which controller a Device represents; it is empty
// for the HMD and for trackers.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)

func (h Hand) String() string {
	if h == "" {
		return "<none>"
	}
	return string(h)
}

// Device is one tracked-device slot: the HMD, a hand controller, or a
// tracker. It owns its own lock since connection state and the active
// profile change independently of pose resolution.
type Device struct {
	mu sync.RWMutex

	index uint32
	class ovr.TrackedDeviceClass
	role  ovr.ControllerRole
	hand  Hand

	connected   bool
	profile     *profiles.Profile
	profilePath string

	// ipdMeters and displayHz are set only on the HMD slot, computed
	// live from OpenXR view/refresh-rate queries rather than sourced
	// from a profile descriptor (spec §4.2).
	ipdMeters *float32
	displayHz *float32
}

// Index returns the device's fixed tracked-device index.
func (d *Device) Index() uint32 { return d.index }

// Class returns the device's ETrackedDeviceClass.
func (d *Device) Class() ovr.TrackedDeviceClass { return d.class }

// Role returns the device's ETrackedControllerRole; ControllerRoleInvalid
// for the HMD and for trackers.
func (d *Device) Role() ovr.ControllerRole { return d.role }

// Hand returns which hand this device represents, if any.
func (d *Device) Hand() Hand { return d.hand }

// Connected reports whether the device currently has a bound
// interaction profile (controllers) or is always-on (HMD).
func (d *Device) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// SetConnected updates connection state and reports whether it
// changed, so callers can decide whether to emit an activation event.
func (d *Device) SetConnected(connected bool) (changed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	changed = d.connected != connected
	d.connected = connected
	return changed
}

// SetProfile records the interaction profile bound to this device's
// subaction path, as resolved from an xrGetCurrentInteractionProfile
// query or an InteractionProfileChanged event.
func (d *Device) SetProfile(p *profiles.Profile, profilePath string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profile = p
	d.profilePath = profilePath
}

// Profile returns the currently bound profile, if any.
func (d *Device) Profile() (*profiles.Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profile, d.profile != nil
}

// SetLiveHMDMetrics records the live IPD and display-refresh-rate
// values queried from the OpenXR runtime; a nil value marks the
// metric as temporarily unavailable.
func (d *Device) SetLiveHMDMetrics(ipdMeters, displayHz *float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ipdMeters = ipdMeters
	d.displayHz = displayHz
}

func (d *Device) opTag() string {
	return fmt.Sprintf("device[%d %s]", d.index, d.hand)
}
