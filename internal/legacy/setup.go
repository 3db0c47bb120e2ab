package legacy

import (
	"context"
	"fmt"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// Setup creates the legacy action set, suggests bindings for every
// known interaction profile, attaches it alongside extraSets (the
// caller's pose action set and any always-on info set), and performs
// the initial sync, mirroring setup_legacy_actions. gripPose and
// aimPose are the pose actions grip/aim-pose bindings are suggested
// against; both are owned and later located by the caller, not by
// this package.
func Setup(ctx context.Context, instance openxr.Instance, session openxr.Session, leftHand, rightHand openxr.Path, gripPose, aimPose openxr.Action, extraSets ...openxr.ActionSet) (*Actions, *State, error) {
	actions, err := NewActions(ctx, instance, leftHand, rightHand)
	if err != nil {
		return nil, nil, err
	}

	if err := actions.SuggestBindings(ctx, instance, profiles.All(), gripPose, aimPose); err != nil {
		return nil, nil, err
	}

	sets := append([]openxr.ActionSet{actions.Set}, extraSets...)
	if err := session.AttachActionSets(ctx, sets); err != nil {
		return nil, nil, fmt.Errorf("attach legacy action sets: %w", err)
	}

	active := make([]openxr.ActiveActionSet, len(sets))
	for i, s := range sets {
		active[i] = openxr.ActiveActionSet{Set: s, SubactionPath: openxr.NullPath}
	}
	if err := session.SyncActions(ctx, active); err != nil {
		return nil, nil, fmt.Errorf("initial legacy action sync: %w", err)
	}

	state := NewState()
	state.OnActionSync()
	return actions, state, nil
}
