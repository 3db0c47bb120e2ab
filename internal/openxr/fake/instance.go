// Package fake is an in-memory implementation of internal/openxr's
// interfaces, standing in for a live OpenXR runtime binding in tests.
// It is deterministic and single-process: SyncActions applies whatever
// action states the test set via the Action.Set* helpers since the
// previous sync, rather than talking to real hardware.
package fake

import (
	"context"
	"sort"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// Instance is a fake openxr.Instance.
type Instance struct {
	extensions map[string]bool

	paths    map[string]openxr.Path
	pathStrs map[openxr.Path]string
	nextPath uint64

	actionSets []*ActionSet

	// suggested maps a profile path to every binding suggested for it,
	// for test assertions mirroring the teacher's fakexr::get_suggested_bindings.
	suggested map[openxr.Path][]openxr.Binding

	handTrackers map[openxr.Path]*HandTracker
}

// NewInstance returns an Instance with the given extensions reported
// enabled.
func NewInstance(enabledExtensions ...string) *Instance {
	exts := make(map[string]bool, len(enabledExtensions))
	for _, e := range enabledExtensions {
		exts[e] = true
	}
	return &Instance{
		extensions: exts,
		paths:        make(map[string]openxr.Path),
		pathStrs:     make(map[openxr.Path]string),
		suggested:    make(map[openxr.Path][]openxr.Binding),
		handTrackers: make(map[openxr.Path]*HandTracker),
	}
}

func (i *Instance) ExtensionEnabled(name string) bool {
	return i.extensions[name]
}

func (i *Instance) StringToPath(_ context.Context, path string) (openxr.Path, error) {
	if p, ok := i.paths[path]; ok {
		return p, nil
	}
	i.nextPath++
	p := openxr.Path(i.nextPath)
	i.paths[path] = p
	i.pathStrs[p] = path
	return p, nil
}

// PathString returns the string a Path was interned from, for test
// assertions and diagnostics.
func (i *Instance) PathString(p openxr.Path) (string, bool) {
	s, ok := i.pathStrs[p]
	return s, ok
}

func (i *Instance) CreateActionSet(_ context.Context, name, localizedName string, priority uint32) (openxr.ActionSet, error) {
	set := &ActionSet{name: name, localizedName: localizedName, priority: priority}
	i.actionSets = append(i.actionSets, set)
	return set, nil
}

func (i *Instance) CreateAction(_ context.Context, set openxr.ActionSet, name, localizedName string, kind openxr.ActionType, subactionPaths []openxr.Path) (openxr.Action, error) {
	fs, ok := set.(*ActionSet)
	if !ok {
		return nil, errNotFakeActionSet
	}
	a := &Action{
		name:           name,
		localizedName:  localizedName,
		kind:           kind,
		subactionPaths: append([]openxr.Path(nil), subactionPaths...),
		boolState:      make(map[openxr.Path]openxr.ActionStateBool),
		floatState:     make(map[openxr.Path]openxr.ActionStateFloat),
		vec2State:      make(map[openxr.Path]openxr.ActionStateVector2f),
	}
	fs.actions = append(fs.actions, a)
	return a, nil
}

func (i *Instance) SuggestBindings(_ context.Context, profilePath openxr.Path, bindings []openxr.Binding) error {
	i.suggested[profilePath] = append(i.suggested[profilePath], bindings...)
	return nil
}

// SuggestedPaths returns every path string suggested for action under
// profilePath, for test assertions mirroring the teacher's
// fakexr::get_suggested_bindings.
func (i *Instance) SuggestedPaths(profilePath openxr.Path, action openxr.Action) []string {
	var out []string
	for _, b := range i.suggested[profilePath] {
		if b.Action == action {
			if s, ok := i.PathString(b.Path); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// CreateHandTracker returns (creating on first use) the fake hand
// tracker for hand.
func (i *Instance) CreateHandTracker(_ context.Context, hand openxr.Path) (openxr.HandTracker, error) {
	if t, ok := i.handTrackers[hand]; ok {
		return t, nil
	}
	t := &HandTracker{hand: hand}
	i.handTrackers[hand] = t
	return t, nil
}

// HandTracker returns the fake hand tracker for hand for tests to
// drive directly, or nil if CreateHandTracker was never called for it.
func (i *Instance) HandTracker(hand openxr.Path) *HandTracker {
	return i.handTrackers[hand]
}

// ActionSets returns every action set created so far, sorted by name,
// for test assertions.
func (i *Instance) ActionSets() []*ActionSet {
	out := append([]*ActionSet(nil), i.actionSets...)
	sort.Slice(out, func(a, b int) bool { return out[a].name < out[b].name })
	return out
}
