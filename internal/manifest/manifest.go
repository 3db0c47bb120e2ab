// Package manifest implements the action manifest loader: it turns a
// JSON action manifest plus its bound per-profile binding files into
// created OpenXR actions, suggested bindings, and a set of custom
// binding evaluators for inputs no native OpenXR binding can express
// directly.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Supreeeme/xrizer/internal/aliasstore"
	"github.com/Supreeeme/xrizer/internal/bindings"
	"github.com/Supreeeme/xrizer/internal/logger"
	"github.com/Supreeeme/xrizer/internal/manifest/schema"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// FetchBindingFile resolves a default_bindings[].binding_url to a
// parsed BindingFile. The loader itself never touches the filesystem
// or network directly; a caller supplies this so that a plain local
// path, an application-relative path, or (via
// internal/manifestfetch.Fetcher.FetchBindingFile) an s3:// URI can
// all be plugged in unmodified.
type FetchBindingFile func(url string) (schema.BindingFile, error)

// LoadedActions is everything the manifest loader produced: every
// created action set and action, keyed by their original (normalized)
// manifest path, plus the custom-binding evaluator set feeding any
// actions no plain OpenXR suggestion could satisfy.
type LoadedActions struct {
	// Sets holds every created action set, keyed by its normalized
	// manifest path (e.g. "/actions/main").
	Sets map[string]openxr.ActionSet

	// Actions holds every created action, keyed by its normalized
	// manifest path (e.g. "/actions/main/in/trigger").
	Actions map[string]openxr.Action

	// ActionTypes records the declared type of each entry in Actions,
	// since OpenVR's typed getters (GetDigitalActionData vs
	// GetAnalogActionData) reject a handle of the wrong kind.
	ActionTypes map[string]string

	// Skeletons holds the declared skeleton actions, keyed by path;
	// these have no OpenXR action counterpart and are resolved by
	// internal/skeletal instead.
	Skeletons map[string]schema.Action

	// Aliases maps a hash-derived sanitized name back to the manifest
	// path it stands in for, for diagnostics.
	Aliases map[string]string

	// HapticOrder lists every declared vibration action's path, in
	// manifest declaration order; legacy_haptic reroutes to the first
	// entry once a manifest is loaded (spec §4.4).
	HapticOrder []string

	// InfoSet is the always-on internal action set attached alongside
	// every manifest-declared set, per spec §4.5 step 5.
	InfoSet openxr.ActionSet

	// Evaluators holds every custom binding evaluator created while
	// walking bound profiles.
	Evaluators *bindings.Set

	// EvaluatorsForAction maps an output action's manifest path to the
	// indices, within Evaluators, of every custom evaluator feeding it.
	// GetDigitalActionData ORs a direct suggestion (if any) together
	// with all of these, per spec §4.6 "Ordering".
	EvaluatorsForAction map[string][]int
}

// Loader turns parsed manifest documents into OpenXR actions and
// suggested bindings against a fixed instance/session pair.
type Loader struct {
	Instance  openxr.Instance
	Session   openxr.Session
	LeftHand  openxr.Path
	RightHand openxr.Path

	// Profiles returns every known interaction profile; overridable in
	// tests, defaults to profiles.All.
	Profiles func() []*profiles.Profile

	// ExtraSets are attached alongside the manifest's own sets and the
	// info set in Load's single AttachActionSets call (e.g.
	// internal/session's shared grip/aim pose-action set, which must
	// ride along since a session's action sets can only be attached
	// once).
	ExtraSets []openxr.ActionSet

	// Cache, if set, records each profile's translated binding
	// suggestions after a successful walk, keyed by a hash of doc plus
	// the profile path (SPEC_FULL.md §4.9). Load never depends on a
	// cache hit; a nil Cache simply skips recording.
	Cache *aliasstore.Store
}

// NewLoader returns a Loader bound to instance/session, with the two
// fixed hand subaction paths already interned.
func NewLoader(ctx context.Context, instance openxr.Instance, session openxr.Session) (*Loader, error) {
	left, err := instance.StringToPath(ctx, "/user/hand/left")
	if err != nil {
		return nil, fmt.Errorf("manifest: intern left hand path: %w", err)
	}
	right, err := instance.StringToPath(ctx, "/user/hand/right")
	if err != nil {
		return nil, fmt.Errorf("manifest: intern right hand path: %w", err)
	}
	return &Loader{
		Instance:  instance,
		Session:   session,
		LeftHand:  left,
		RightHand: right,
		Profiles:  profiles.All,
	}, nil
}

// load is the mutable state threaded through one Load call: the
// created sets/actions, the evaluator set, and the dpad-parent sharing
// cache (keyed across the whole document, not just one profile, since
// the same physical input across multiple bound profiles should still
// share one synthesized parent action).
type load struct {
	loader *Loader

	la *LoadedActions

	dpadParents    map[string]openxr.Action // "<set>|<parent path>" -> shared vector2 action
	dpadActivators map[string]openxr.Action // "<set>|<parent path>" -> shared click/touch/force action
	dpadHaptics    map[string]openxr.Action // "<set>|<parent path>" -> shared haptic action
	extraSeq       int

	// docBytes is a canonical JSON re-encoding of the normalized
	// document, used only as the aliasstore cache key. It need not
	// match the original manifest bytes byte-for-byte; it only needs to
	// be stable for the same logical document.
	docBytes []byte
}

// Load runs the full action-manifest pipeline (spec §4.5 steps 1-5;
// step 6's restart/replay decision belongs to internal/session, which
// calls Load again after a restart). bindingFile resolves a
// default_bindings[].binding_url.
func (l *Loader) Load(ctx context.Context, doc schema.Document, bindingFile FetchBindingFile) (*LoadedActions, error) {
	doc = normalizeDocument(doc)
	docBytes, _ := json.Marshal(doc)

	st := &load{
		loader:   l,
		docBytes: docBytes,
		la: &LoadedActions{
			Sets:                make(map[string]openxr.ActionSet),
			Actions:             make(map[string]openxr.Action),
			ActionTypes:         make(map[string]string),
			Skeletons:           make(map[string]schema.Action),
			Aliases:             make(map[string]string),
			Evaluators:          bindings.NewSet(),
			EvaluatorsForAction: make(map[string][]int),
		},
		dpadParents:    make(map[string]openxr.Action),
		dpadActivators: make(map[string]openxr.Action),
		dpadHaptics:    make(map[string]openxr.Action),
	}

	if err := st.createSetsAndActions(ctx, doc); err != nil {
		return nil, err
	}

	infoSet, err := l.Instance.CreateActionSet(ctx, "xrizer-info", "XRizer Info", 0)
	if err != nil {
		return nil, fmt.Errorf("manifest: create info set: %w", err)
	}
	st.la.InfoSet = infoSet
	if _, err := l.Instance.CreateAction(ctx, infoSet, "info", "XRizer Info", openxr.ActionTypeBoolean, nil); err != nil {
		return nil, fmt.Errorf("manifest: create info action: %w", err)
	}

	profileByControllerType := make(map[string]*profiles.Profile)
	for _, p := range l.Profiles() {
		profileByControllerType[p.Properties.ControllerType] = p
	}

	for _, db := range doc.DefaultBindings {
		profile, ok := profileByControllerType[strings.ToLower(db.ControllerType)]
		if !ok {
			logger.Warn("manifest: unknown controller type, skipping default binding", "controller_type", db.ControllerType)
			continue
		}
		bf, err := bindingFile(db.BindingURL)
		if err != nil {
			logger.Warn("manifest: failed to fetch binding file, skipping profile", "url", db.BindingURL, "error", err)
			continue
		}
		if err := st.walkProfile(ctx, profile, bf); err != nil {
			logger.Warn("manifest: error walking profile bindings", "profile", profile.Path, "error", err)
		}
	}

	sets := make([]openxr.ActionSet, 0, len(st.la.Sets)+1+len(l.ExtraSets))
	for _, s := range st.la.Sets {
		sets = append(sets, s)
	}
	sets = append(sets, infoSet)
	sets = append(sets, l.ExtraSets...)
	if err := l.Session.AttachActionSets(ctx, sets); err != nil {
		return nil, fmt.Errorf("manifest: attach action sets: %w", err)
	}

	return st.la, nil
}

// normalizeDocument lowercases every set/action path and auto-creates
// an action-set declaration for any action whose declared set does not
// otherwise appear in doc.ActionSets, per spec §4.5 step 1.
func normalizeDocument(doc schema.Document) schema.Document {
	out := doc
	out.ActionSets = make([]schema.ActionSet, len(doc.ActionSets))
	declared := make(map[string]struct{}, len(doc.ActionSets))
	for i, s := range doc.ActionSets {
		s.Name = strings.ToLower(s.Name)
		out.ActionSets[i] = s
		declared[s.Name] = struct{}{}
	}

	out.Actions = make([]schema.Action, len(doc.Actions))
	for i, a := range doc.Actions {
		a.Name = strings.ToLower(a.Name)
		out.Actions[i] = a

		set := setPathOf(a.Name)
		if _, ok := declared[set]; !ok {
			declared[set] = struct{}{}
			out.ActionSets = append(out.ActionSets, schema.ActionSet{Name: set})
		}
	}
	return out
}

// setPathOf returns the action-set path that owns action path p, i.e.
// everything before its "/in/", "/out/", or last segment.
func setPathOf(actionPath string) string {
	for _, marker := range []string{"/in/", "/out/"} {
		if idx := strings.Index(actionPath, marker); idx >= 0 {
			return actionPath[:idx]
		}
	}
	idx := strings.LastIndex(actionPath, "/")
	if idx <= 0 {
		return actionPath
	}
	return actionPath[:idx]
}

func (st *load) createSetsAndActions(ctx context.Context, doc schema.Document) error {
	for _, s := range doc.ActionSets {
		name := sanitizeName(strings.TrimPrefix(s.Name, "/"))
		if name != strings.TrimPrefix(s.Name, "/") {
			st.la.Aliases[name] = s.Name
		}
		localized := s.Usage
		if localized == "" {
			localized = s.Name
		}
		set, err := st.loader.Instance.CreateActionSet(ctx, name, localized, 0)
		if err != nil {
			return fmt.Errorf("manifest: create action set %q: %w", s.Name, err)
		}
		st.la.Sets[s.Name] = set
	}

	hands := []openxr.Path{st.loader.LeftHand, st.loader.RightHand}
	for _, a := range doc.Actions {
		if a.Type == "skeleton" {
			st.la.Skeletons[a.Name] = a
			continue
		}
		kind, ok := actionTypeFor(a.Type)
		if !ok {
			logger.Warn("manifest: unrecognized action type, skipping", "action", a.Name, "type", a.Type)
			continue
		}
		setPath := setPathOf(a.Name)
		set, ok := st.la.Sets[setPath]
		if !ok {
			logger.Warn("manifest: action references unknown set, skipping", "action", a.Name, "set", setPath)
			continue
		}
		name := sanitizeName(strings.TrimPrefix(a.Name, "/"))
		if name != strings.TrimPrefix(a.Name, "/") {
			st.la.Aliases[name] = a.Name
		}
		var subactionPaths []openxr.Path
		if kind != openxr.ActionTypePose {
			subactionPaths = hands
		}
		action, err := st.loader.Instance.CreateAction(ctx, set, name, a.Name, kind, subactionPaths)
		if err != nil {
			return fmt.Errorf("manifest: create action %q: %w", a.Name, err)
		}
		st.la.Actions[a.Name] = action
		st.la.ActionTypes[a.Name] = a.Type
		if kind == openxr.ActionTypeVibration {
			st.la.HapticOrder = append(st.la.HapticOrder, a.Name)
		}
	}
	return nil
}

// EffectiveBool returns the visible boolean state for actionPath per
// spec §4.6 "Ordering": the logical OR of a direct boolean suggestion
// (if the action itself is bound and active) and every custom
// evaluator registered against it for subactionPath.
func (la *LoadedActions) EffectiveBool(ctx context.Context, actionPath string, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	var states []*openxr.ActionStateBool

	if action, ok := la.Actions[actionPath]; ok && action.Kind() == openxr.ActionTypeBoolean {
		direct, err := action.Bool(ctx, subactionPath)
		if err != nil {
			return nil, err
		}
		if direct.IsActive {
			states = append(states, &direct)
		}
	}

	for _, idx := range la.EvaluatorsForAction[actionPath] {
		s, err := la.Evaluators.StateAt(ctx, idx, subactionPath)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}

	return bindings.Or(states...), nil
}

// FirstHapticAction returns the earliest-declared vibration action, for
// legacy_haptic's reroute once a manifest is loaded.
func (la *LoadedActions) FirstHapticAction() (openxr.Action, bool) {
	if len(la.HapticOrder) == 0 {
		return nil, false
	}
	a, ok := la.Actions[la.HapticOrder[0]]
	return a, ok
}

func actionTypeFor(declared string) (openxr.ActionType, bool) {
	switch declared {
	case "boolean":
		return openxr.ActionTypeBoolean, true
	case "vector1":
		return openxr.ActionTypeFloat, true
	case "vector2":
		return openxr.ActionTypeVector2f, true
	case "pose":
		return openxr.ActionTypePose, true
	case "vibration":
		return openxr.ActionTypeVibration, true
	default:
		return 0, false
	}
}
