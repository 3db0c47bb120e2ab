package fake

import (
	"context"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// HandTracker is a fake openxr.HandTracker. Tests drive it with
// SetJoint/SetActive; LocateJoints returns whatever was last set.
type HandTracker struct {
	hand   openxr.Path
	active bool
	joints openxr.HandJointLocations
}

// SetActive marks the tracker as actively tracking or lost.
func (h *HandTracker) SetActive(active bool) { h.active = active }

// SetJoint sets one joint's location, implicitly marking the tracker active.
func (h *HandTracker) SetJoint(joint openxr.HandJoint, loc openxr.HandJointLocation) {
	h.joints[joint] = loc
	h.active = true
}

func (h *HandTracker) LocateJoints(_ context.Context, _ openxr.Space, _ time.Time) (openxr.HandJointLocations, bool, error) {
	return h.joints, h.active, nil
}

var _ openxr.HandTracker = (*HandTracker)(nil)
