// Package legacy implements the fixed legacy action set
// (xrizer-legacy-set): the trigger/squeeze/main-xy/app-menu/A/haptic
// actions and grip pose binding suggested across every known
// interaction profile, so a controller reports connected and reports
// input before any action manifest loads (spec §4.4).
package legacy

import (
	"context"
	"fmt"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

const (
	setName          = "xrizer-legacy-set"
	setLocalizedName = "XRizer Legacy Set"
)

// Actions holds the fixed set of legacy actions created once per
// session, plus the action set they belong to.
type Actions struct {
	Set openxr.ActionSet

	AppMenu      openxr.Action
	A            openxr.Action
	TriggerClick openxr.Action
	SqueezeClick openxr.Action
	Trigger      openxr.Action
	Squeeze      openxr.Action
	MainXY       openxr.Action
	MainXYTouch  openxr.Action
	MainXYClick  openxr.Action
	Haptic       openxr.Action
}

// NewActions creates the legacy action set and its fixed actions,
// restricted to the given left/right subaction paths.
func NewActions(ctx context.Context, instance openxr.Instance, leftHand, rightHand openxr.Path) (*Actions, error) {
	leftRight := []openxr.Path{leftHand, rightHand}

	set, err := instance.CreateActionSet(ctx, setName, setLocalizedName, 0)
	if err != nil {
		return nil, fmt.Errorf("create legacy action set: %w", err)
	}

	create := func(name, localized string, kind openxr.ActionType) (openxr.Action, error) {
		a, err := instance.CreateAction(ctx, set, name, localized, kind, leftRight)
		if err != nil {
			return nil, fmt.Errorf("create legacy action %q: %w", name, err)
		}
		return a, nil
	}

	var a Actions
	a.Set = set
	if a.TriggerClick, err = create("trigger-click", "Trigger Click", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.Trigger, err = create("trigger", "Trigger", openxr.ActionTypeFloat); err != nil {
		return nil, err
	}
	if a.Squeeze, err = create("squeeze", "Squeeze", openxr.ActionTypeFloat); err != nil {
		return nil, err
	}
	if a.AppMenu, err = create("app-menu", "Application Menu", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.A, err = create("a", "A Button", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.SqueezeClick, err = create("grip-click", "Grip Click", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.MainXY, err = create("main-joystick", "Main Joystick/Trackpad", openxr.ActionTypeVector2f); err != nil {
		return nil, err
	}
	if a.MainXYClick, err = create("main-joystick-click", "Main Joystick Click", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.MainXYTouch, err = create("main-joystick-touch", "Main Joystick Touch", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.Haptic, err = create("haptic", "Haptic", openxr.ActionTypeVibration); err != nil {
		return nil, err
	}
	return &a, nil
}

// SuggestBindings submits one xrSuggestInteractionProfileBindings call
// per profile in profileList, translating each profile's
// LegacyBindings path lists into Binding values against a's actions
// and gripPose/aimPose (grip and aim pose are bound separately since
// they are resolved through the pose cache, not read as action values).
func (a *Actions) SuggestBindings(ctx context.Context, instance openxr.Instance, profileList []*profiles.Profile, gripPose, aimPose openxr.Action) error {
	for _, p := range profileList {
		profilePath, err := instance.StringToPath(ctx, p.Path)
		if err != nil {
			return fmt.Errorf("intern profile path %q: %w", p.Path, err)
		}

		var bindings []openxr.Binding
		add := func(action openxr.Action, paths []string) error {
			for _, s := range paths {
				path, err := instance.StringToPath(ctx, s)
				if err != nil {
					return fmt.Errorf("intern binding path %q: %w", s, err)
				}
				bindings = append(bindings, openxr.Binding{Action: action, Path: path})
			}
			return nil
		}

		lb := p.Legacy
		for _, step := range []struct {
			action openxr.Action
			paths  []string
		}{
			{gripPose, lb.GripPose},
			{aimPose, lb.AimPose},
			{a.AppMenu, lb.AppMenu},
			{a.A, lb.A},
			{a.TriggerClick, lb.TriggerClick},
			{a.SqueezeClick, lb.SqueezeClick},
			{a.Trigger, lb.Trigger},
			{a.Squeeze, lb.Squeeze},
			{a.MainXY, lb.MainXY},
			{a.MainXYTouch, lb.MainXYTouch},
			{a.MainXYClick, lb.MainXYClick},
		} {
			if err := add(step.action, step.paths); err != nil {
				return err
			}
		}

		if err := instance.SuggestBindings(ctx, profilePath, bindings); err != nil {
			return fmt.Errorf("suggest bindings for %q: %w", p.Path, err)
		}
	}
	return nil
}
