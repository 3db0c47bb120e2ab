package fake

import (
	"context"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// Action is a fake openxr.Action. Tests drive it with SetBool/SetFloat/
// SetVector2f before calling Session.SyncActions; reads return the value
// committed at the most recent sync, with Changed computed against the
// previous commit.
type Action struct {
	name           string
	localizedName  string
	kind           openxr.ActionType
	subactionPaths []openxr.Path

	pendingBool map[openxr.Path]bool
	pendingF    map[openxr.Path]float32
	pendingVec2 map[openxr.Path][2]float32

	boolState  map[openxr.Path]openxr.ActionStateBool
	floatState map[openxr.Path]openxr.ActionStateFloat
	vec2State  map[openxr.Path]openxr.ActionStateVector2f

	active map[openxr.Path]bool
}

func (a *Action) Kind() openxr.ActionType { return a.kind }

// Name returns the action's creation-time name, for test assertions.
func (a *Action) Name() string { return a.name }

// SetBool queues a boolean value for subactionPath, applied on the next
// Session.SyncActions.
func (a *Action) SetBool(subactionPath openxr.Path, value bool) {
	if a.pendingBool == nil {
		a.pendingBool = make(map[openxr.Path]bool)
	}
	a.pendingBool[subactionPath] = value
}

// SetFloat queues a float value for subactionPath.
func (a *Action) SetFloat(subactionPath openxr.Path, value float32) {
	if a.pendingF == nil {
		a.pendingF = make(map[openxr.Path]float32)
	}
	a.pendingF[subactionPath] = value
}

// SetVector2f queues a vector2 value for subactionPath.
func (a *Action) SetVector2f(subactionPath openxr.Path, x, y float32) {
	if a.pendingVec2 == nil {
		a.pendingVec2 = make(map[openxr.Path][2]float32)
	}
	a.pendingVec2[subactionPath] = [2]float32{x, y}
}

// SetActive marks subactionPath as bound (Active=true) or unbound for
// this action; defaults to true once any value has been set for it.
func (a *Action) SetActive(subactionPath openxr.Path, active bool) {
	if a.active == nil {
		a.active = make(map[openxr.Path]bool)
	}
	a.active[subactionPath] = active
}

func (a *Action) isActive(path openxr.Path) bool {
	if a.active == nil {
		return true
	}
	v, ok := a.active[path]
	if !ok {
		return true
	}
	return v
}

// sync commits pending values, computing Changed against the prior
// commit. Called by Session.SyncActions.
func (a *Action) sync(now time.Time) {
	for path, v := range a.pendingBool {
		prev, existed := a.boolState[path]
		a.boolState[path] = openxr.ActionStateBool{
			IsActive:       a.isActive(path),
			CurrentState:   v,
			Changed:        !existed || prev.CurrentState != v,
			LastChangeTime: now,
		}
	}
	for path, v := range a.pendingF {
		prev, existed := a.floatState[path]
		a.floatState[path] = openxr.ActionStateFloat{
			IsActive:       a.isActive(path),
			CurrentState:   v,
			Changed:        !existed || prev.CurrentState != v,
			LastChangeTime: now,
		}
	}
	for path, v := range a.pendingVec2 {
		prev, existed := a.vec2State[path]
		a.vec2State[path] = openxr.ActionStateVector2f{
			IsActive:       a.isActive(path),
			X:              v[0],
			Y:              v[1],
			Changed:        !existed || prev.X != v[0] || prev.Y != v[1],
			LastChangeTime: now,
		}
	}
}

func (a *Action) Bool(_ context.Context, subactionPath openxr.Path) (openxr.ActionStateBool, error) {
	return a.boolState[subactionPath], nil
}

func (a *Action) Float(_ context.Context, subactionPath openxr.Path) (openxr.ActionStateFloat, error) {
	return a.floatState[subactionPath], nil
}

func (a *Action) Vector2f(_ context.Context, subactionPath openxr.Path) (openxr.ActionStateVector2f, error) {
	return a.vec2State[subactionPath], nil
}

func (a *Action) CreateSpace(_ context.Context, subactionPath openxr.Path) (openxr.Space, error) {
	return &Space{kind: openxr.SpaceKindAction, owner: a, subactionPath: subactionPath}, nil
}

var _ openxr.Action = (*Action)(nil)
