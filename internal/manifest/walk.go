package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Supreeeme/xrizer/internal/aliasstore"
	"github.com/Supreeeme/xrizer/internal/bindings"
	"github.com/Supreeeme/xrizer/internal/logger"
	"github.com/Supreeeme/xrizer/internal/manifest/schema"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// componentSuffix returns the path suffix a binding component name maps
// to under a physical input's base path. click/touch/force are
// sub-component paths; value/pull/position read the base input itself.
func componentSuffix(component string) string {
	switch component {
	case "click", "touch", "force":
		return "/" + component
	case "value", "pull", "position", "x", "y", "":
		return ""
	default:
		return "/" + component
	}
}

// walkProfile translates and classifies every source in bf against
// profile, collecting suggestions and suggesting them in one call.
func (st *load) walkProfile(ctx context.Context, profile *profiles.Profile, bf schema.BindingFile) error {
	profilePath, err := st.loader.Instance.StringToPath(ctx, profile.Path)
	if err != nil {
		return fmt.Errorf("string_to_path(%s): %w", profile.Path, err)
	}

	var suggestions []openxr.Binding
	var cached []aliasstore.CachedBinding
	for _, list := range bf.ActionLists {
		if _, ok := st.la.Sets[list.ActionSet]; !ok {
			logger.Warn("manifest: binding references unknown action set, skipping", "set", list.ActionSet)
			continue
		}

		for _, src := range list.Sources {
			translated := profile.Translate(src.Path)
			if !profile.IsLegalPath(translated) {
				logger.Debug("manifest: path not legal for profile, skipping", "profile", profile.Path, "path", translated)
				continue
			}
			bs, err := st.classifySource(ctx, profile, list.ActionSet, translated, src)
			if err != nil {
				logger.Warn("manifest: failed to classify source, skipping", "path", translated, "error", err)
				continue
			}
			suggestions = append(suggestions, bs...)
			for _, output := range src.Inputs {
				cached = append(cached, aliasstore.CachedBinding{Action: output.Output, Path: translated, Mode: src.Mode})
			}
		}

		for _, pose := range list.Poses {
			translated := profile.Translate(pose.Path)
			action, ok := st.la.Actions[pose.Output]
			if !ok {
				continue
			}
			p, err := st.loader.Instance.StringToPath(ctx, translated)
			if err != nil {
				continue
			}
			suggestions = append(suggestions, openxr.Binding{Action: action, Path: p})
		}

		for _, h := range list.Haptics {
			translated := profile.Translate(h.Path)
			action, ok := st.la.Actions[h.Output]
			if !ok {
				continue
			}
			p, err := st.loader.Instance.StringToPath(ctx, translated)
			if err != nil {
				continue
			}
			suggestions = append(suggestions, openxr.Binding{Action: action, Path: p})
		}
	}

	if len(suggestions) == 0 {
		return nil
	}
	if err := st.loader.Instance.SuggestBindings(ctx, profilePath, suggestions); err != nil {
		return err
	}
	if st.loader.Cache != nil {
		st.loader.Cache.PutBestEffort(ctx, st.docBytes, profile.Path, aliasstore.Entry{
			Aliases:  st.la.Aliases,
			Bindings: cached,
		})
	}
	return nil
}

// classifySource returns every Binding a single bound source produces:
// plain direct suggestions for ordinary modes, plus the extra actions
// and evaluator registrations a custom mode (dpad/grab/toggle/
// threshold) needs.
func (st *load) classifySource(ctx context.Context, profile *profiles.Profile, setPath, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	switch src.Mode {
	case "dpad":
		return st.classifyDpad(ctx, profile, setPath, translated, src)
	case "grab":
		return st.classifyGrab(ctx, setPath, translated, src)
	case "toggle":
		return st.classifyToggle(ctx, setPath, translated, src)
	case "threshold":
		return st.classifyThreshold(ctx, setPath, translated, src)
	default:
		return st.classifyPlain(ctx, translated, src)
	}
}

// classifyPlain handles button/trigger/trackpad/joystick/force_sensor
// and any other mode the loader doesn't specially recognize: each
// input component is suggested directly to its named output action, if
// that action exists and the binding is otherwise well-formed.
func (st *load) classifyPlain(ctx context.Context, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	var out []openxr.Binding
	for component, output := range src.Inputs {
		action, ok := st.la.Actions[output.Output]
		if !ok {
			logger.Debug("manifest: unknown output action, skipping", "output", output.Output)
			continue
		}
		p, err := st.loader.Instance.StringToPath(ctx, translated+componentSuffix(component))
		if err != nil {
			return nil, err
		}
		out = append(out, openxr.Binding{Action: action, Path: p})
	}
	return out, nil
}

// basePath strips a trailing "/value", "/force", "/click", "/touch", or
// "/pull" component, if present, so a custom binding mode can derive
// its physical input's shared base path regardless of which specific
// sub-component the manifest's source record happened to name.
func basePath(p string) string {
	for _, suffix := range []string{"/value", "/force", "/click", "/touch", "/pull"} {
		if strings.HasSuffix(p, suffix) {
			return strings.TrimSuffix(p, suffix)
		}
	}
	return p
}

// useForceActivator mirrors the teacher's get_dpad_parent rule: only
// Knuckles-class trackpads gate their dpad with a force sensor rather
// than a click.
func useForceActivator(profile *profiles.Profile, parentPath string) bool {
	return profile.Properties.ControllerType == "knuckles" && strings.HasSuffix(parentPath, "trackpad")
}

var directionByName = map[string]bindings.Direction{
	"north":  bindings.DirectionNorth,
	"east":   bindings.DirectionEast,
	"south":  bindings.DirectionSouth,
	"west":   bindings.DirectionWest,
	"center": bindings.DirectionCenter,
}

func (st *load) classifyDpad(ctx context.Context, profile *profiles.Profile, setPath, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	set, ok := st.la.Sets[setPath]
	if !ok {
		return nil, fmt.Errorf("unknown action set %q", setPath)
	}
	key := setPath + "|" + translated

	var out []openxr.Binding
	parent, created, err := st.dpadParentAction(ctx, set, key, translated)
	if err != nil {
		return nil, err
	}
	if created {
		p, err := st.loader.Instance.StringToPath(ctx, translated)
		if err != nil {
			return nil, err
		}
		out = append(out, openxr.Binding{Action: parent, Path: p})
	}

	subMode := "click"
	if src.Parameters != nil && src.Parameters.SubMode != "" {
		subMode = src.Parameters.SubMode
	}
	activatorPath := translated + "/click"
	switch {
	case useForceActivator(profile, translated):
		activatorPath = translated + "/force"
	case subMode == "touch":
		activatorPath = translated + "/touch"
	}
	activator, activatorCreated, err := st.dpadActivatorAction(ctx, set, key, activatorPath)
	if err != nil {
		return nil, err
	}
	if activatorCreated {
		p, err := st.loader.Instance.StringToPath(ctx, activatorPath)
		if err != nil {
			return nil, err
		}
		out = append(out, openxr.Binding{Action: activator, Path: p})
	}

	var haptic openxr.Action
	if useForceActivator(profile, translated) {
		handPrefix := "/user/hand/left"
		if strings.HasPrefix(translated, "/user/hand/right") {
			handPrefix = "/user/hand/right"
		}
		hapticPath := handPrefix + "/output/haptic"
		h, hapticCreated, err := st.dpadHapticAction(ctx, set, key, hapticPath)
		if err != nil {
			return nil, err
		}
		haptic = h
		if hapticCreated {
			p, err := st.loader.Instance.StringToPath(ctx, hapticPath)
			if err != nil {
				return nil, err
			}
			out = append(out, openxr.Binding{Action: haptic, Path: p})
		}
	}

	for dirName, output := range src.Inputs {
		direction, ok := directionByName[dirName]
		if !ok {
			logger.Debug("manifest: unknown dpad direction, skipping", "direction", dirName)
			continue
		}
		dp := bindings.NewDpad(st.loader.Session, parent, activator, haptic, direction)
		idx := st.la.Evaluators.Add(dp)
		st.la.EvaluatorsForAction[output.Output] = append(st.la.EvaluatorsForAction[output.Output], idx)
	}

	return out, nil
}

func (st *load) dpadParentAction(ctx context.Context, set openxr.ActionSet, key, parentPath string) (openxr.Action, bool, error) {
	if a, ok := st.dpadParents[key]; ok {
		return a, false, nil
	}
	st.extraSeq++
	name := fmt.Sprintf("xrizer-dpad-parent-%d", st.extraSeq)
	localized := fmt.Sprintf("XRizer dpad parent (%s)", parentPath)
	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	a, err := st.loader.Instance.CreateAction(ctx, set, name, localized, openxr.ActionTypeVector2f, hands)
	if err != nil {
		return nil, false, err
	}
	st.dpadParents[key] = a
	return a, true, nil
}

func (st *load) dpadActivatorAction(ctx context.Context, set openxr.ActionSet, key, activatorPath string) (openxr.Action, bool, error) {
	if a, ok := st.dpadActivators[key]; ok {
		return a, false, nil
	}
	st.extraSeq++
	name := fmt.Sprintf("xrizer-dpad-active-%d", st.extraSeq)
	localized := fmt.Sprintf("XRizer dpad active (%s)", activatorPath)
	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	a, err := st.loader.Instance.CreateAction(ctx, set, name, localized, openxr.ActionTypeFloat, hands)
	if err != nil {
		return nil, false, err
	}
	st.dpadActivators[key] = a
	return a, true, nil
}

func (st *load) dpadHapticAction(ctx context.Context, set openxr.ActionSet, key, hapticPath string) (openxr.Action, bool, error) {
	if a, ok := st.dpadHaptics[key]; ok {
		return a, false, nil
	}
	st.extraSeq++
	name := fmt.Sprintf("xrizer-dpad-haptic-%d", st.extraSeq)
	localized := fmt.Sprintf("XRizer dpad haptic (%s)", hapticPath)
	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	a, err := st.loader.Instance.CreateAction(ctx, set, name, localized, openxr.ActionTypeVibration, hands)
	if err != nil {
		return nil, false, err
	}
	st.dpadHaptics[key] = a
	return a, true, nil
}

// classifyGrab creates the hidden force/value companion actions a Grab
// evaluator reads, suggests the physical force/value sub-paths to
// them, and registers the evaluator against the declared grab output.
func (st *load) classifyGrab(ctx context.Context, setPath, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	output, ok := src.Inputs["grab"]
	if !ok {
		return nil, fmt.Errorf("grab source missing \"grab\" input")
	}
	set, ok := st.la.Sets[setPath]
	if !ok {
		return nil, fmt.Errorf("unknown action set %q", setPath)
	}
	base := basePath(translated)

	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	st.extraSeq++
	force, err := st.loader.Instance.CreateAction(ctx, set, fmt.Sprintf("xrizer-grab-force-%d", st.extraSeq), "XRizer grab force", openxr.ActionTypeFloat, hands)
	if err != nil {
		return nil, err
	}
	value, err := st.loader.Instance.CreateAction(ctx, set, fmt.Sprintf("xrizer-grab-value-%d", st.extraSeq), "XRizer grab value", openxr.ActionTypeFloat, hands)
	if err != nil {
		return nil, err
	}

	forcePath, err := st.loader.Instance.StringToPath(ctx, base+"/force")
	if err != nil {
		return nil, err
	}
	valuePath, err := st.loader.Instance.StringToPath(ctx, base+"/value")
	if err != nil {
		return nil, err
	}

	var hold, release float32
	if src.Parameters != nil {
		if src.Parameters.HoldThreshold != nil {
			hold = *src.Parameters.HoldThreshold
		}
		if src.Parameters.ReleaseThreshold != nil {
			release = *src.Parameters.ReleaseThreshold
		}
	}

	grab := bindings.NewGrab(force, value, hold, release)
	idx := st.la.Evaluators.Add(grab)
	st.la.EvaluatorsForAction[output.Output] = append(st.la.EvaluatorsForAction[output.Output], idx)

	return []openxr.Binding{
		{Action: force, Path: forcePath},
		{Action: value, Path: valuePath},
	}, nil
}

// classifyToggle creates the hidden boolean source a Toggle evaluator
// latches on, and registers the evaluator against the declared output.
func (st *load) classifyToggle(ctx context.Context, setPath, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	output, ok := src.Inputs["click"]
	if !ok {
		output, ok = src.Inputs["touch"]
	}
	if !ok {
		return nil, fmt.Errorf("toggle source missing \"click\"/\"touch\" input")
	}
	set, ok := st.la.Sets[setPath]
	if !ok {
		return nil, fmt.Errorf("unknown action set %q", setPath)
	}
	base := basePath(translated)

	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	st.extraSeq++
	source, err := st.loader.Instance.CreateAction(ctx, set, fmt.Sprintf("xrizer-toggle-src-%d", st.extraSeq), "XRizer toggle source", openxr.ActionTypeBoolean, hands)
	if err != nil {
		return nil, err
	}
	sourcePath, err := st.loader.Instance.StringToPath(ctx, base+"/click")
	if err != nil {
		return nil, err
	}

	toggle := bindings.NewToggle(source)
	idx := st.la.Evaluators.Add(toggle)
	st.la.EvaluatorsForAction[output.Output] = append(st.la.EvaluatorsForAction[output.Output], idx)

	return []openxr.Binding{{Action: source, Path: sourcePath}}, nil
}

// classifyThreshold creates the hidden float/vector2 source a
// Threshold evaluator compares, and registers the evaluator against
// the declared output ("touch-from-pull" in spec §4.5 step 3: a pull
// axis synthesizing a click/touch boolean).
func (st *load) classifyThreshold(ctx context.Context, setPath, translated string, src schema.BindingSource) ([]openxr.Binding, error) {
	output, ok := src.Inputs["pull"]
	if !ok {
		output, ok = src.Inputs["value"]
	}
	if !ok {
		return nil, fmt.Errorf("threshold source missing \"pull\"/\"value\" input")
	}
	set, ok := st.la.Sets[setPath]
	if !ok {
		return nil, fmt.Errorf("unknown action set %q", setPath)
	}

	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	st.extraSeq++
	source, err := st.loader.Instance.CreateAction(ctx, set, fmt.Sprintf("xrizer-threshold-src-%d", st.extraSeq), "XRizer threshold source", openxr.ActionTypeFloat, hands)
	if err != nil {
		return nil, err
	}
	sourcePath, err := st.loader.Instance.StringToPath(ctx, translated)
	if err != nil {
		return nil, err
	}

	var click, release float32
	if src.Parameters != nil {
		if src.Parameters.ClickThreshold != nil {
			click = *src.Parameters.ClickThreshold
		}
		if src.Parameters.ReleaseThreshold != nil {
			release = *src.Parameters.ReleaseThreshold
		}
	}

	threshold := bindings.NewThresholdFloat(source, click, release)
	idx := st.la.Evaluators.Add(threshold)
	st.la.EvaluatorsForAction[output.Output] = append(st.la.EvaluatorsForAction[output.Output], idx)

	return []openxr.Binding{{Action: source, Path: sourcePath}}, nil
}
