package skeletal

import (
	"context"
	"fmt"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

const (
	setName          = "xrizer-skeletal-set"
	setLocalizedName = "XRizer Skeletal Set"
)

// Actions holds the fixed actions the curl/splay estimator reads,
// created once per session alongside the legacy action set.
type Actions struct {
	Set openxr.ActionSet

	ThumbTouch openxr.Action
	IndexTouch openxr.Action
	IndexCurl  openxr.Action
	RestCurl   openxr.Action
}

// NewActions creates the skeletal action set and its fixed actions,
// restricted to the given left/right subaction paths.
func NewActions(ctx context.Context, instance openxr.Instance, leftHand, rightHand openxr.Path) (*Actions, error) {
	leftRight := []openxr.Path{leftHand, rightHand}

	set, err := instance.CreateActionSet(ctx, setName, setLocalizedName, 0)
	if err != nil {
		return nil, fmt.Errorf("create skeletal action set: %w", err)
	}

	create := func(name, localized string, kind openxr.ActionType) (openxr.Action, error) {
		a, err := instance.CreateAction(ctx, set, name, localized, kind, leftRight)
		if err != nil {
			return nil, fmt.Errorf("create skeletal action %q: %w", name, err)
		}
		return a, nil
	}

	var a Actions
	a.Set = set
	if a.ThumbTouch, err = create("thumb-touch", "Thumb Touch", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.IndexTouch, err = create("index-touch", "Index Touch", openxr.ActionTypeBoolean); err != nil {
		return nil, err
	}
	if a.IndexCurl, err = create("index-curl", "Index Curl", openxr.ActionTypeFloat); err != nil {
		return nil, err
	}
	if a.RestCurl, err = create("rest-curl", "Rest Curl", openxr.ActionTypeFloat); err != nil {
		return nil, err
	}
	return &a, nil
}

// SuggestBindings submits one xrSuggestInteractionProfileBindings call
// per profile in profileList, translating each profile's
// SkeletalInputBindings path lists into Binding values against a's
// actions. A profile with no skeletal bindings declared is skipped.
func (a *Actions) SuggestBindings(ctx context.Context, instance openxr.Instance, profileList []*profiles.Profile) error {
	for _, p := range profileList {
		sb := p.Skeletal
		if len(sb.ThumbTouch) == 0 && len(sb.IndexTouch) == 0 && len(sb.IndexCurl) == 0 && len(sb.RestCurl) == 0 {
			continue
		}

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

		for _, step := range []struct {
			action openxr.Action
			paths  []string
		}{
			{a.ThumbTouch, sb.ThumbTouch},
			{a.IndexTouch, sb.IndexTouch},
			{a.IndexCurl, sb.IndexCurl},
			{a.RestCurl, sb.RestCurl},
		} {
			if err := add(step.action, step.paths); err != nil {
				return err
			}
		}

		if err := instance.SuggestBindings(ctx, profilePath, bindings); err != nil {
			return fmt.Errorf("suggest skeletal bindings for %q: %w", p.Path, err)
		}
	}
	return nil
}
