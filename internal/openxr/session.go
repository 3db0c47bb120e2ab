package openxr

import (
	"context"
	"time"
)

// Session is the subset of an XrSession the core needs: attaching
// action sets once per session, syncing them per frame, locating
// spaces, and applying haptic feedback.
type Session interface {
	// AttachActionSets attaches sets to the session. Per spec.md §3,
	// this may only be called once per session; a second manifest load
	// requires a session restart rather than a second attach.
	AttachActionSets(ctx context.Context, sets []ActionSet) error

	// SyncActions syncs the given active action sets, refreshing every
	// action state read until the next SyncActions call.
	SyncActions(ctx context.Context, activeSets []ActiveActionSet) error

	// CreateReferenceSpace creates a reference space of the given type.
	CreateReferenceSpace(ctx context.Context, kind ReferenceSpaceType) (Space, error)

	// LocateSpace locates space relative to base at atTime.
	LocateSpace(ctx context.Context, space, base Space, atTime time.Time) (SpaceLocation, error)

	// ApplyHapticFeedback triggers haptic vibration on action, restricted
	// to subactionPath (NullPath for unrestricted).
	ApplyHapticFeedback(ctx context.Context, action Action, subactionPath Path, vibration HapticVibration) error

	// StopHapticFeedback halts any in-progress vibration on action.
	StopHapticFeedback(ctx context.Context, action Action, subactionPath Path) error
}
