// Package bindings implements the custom binding evaluators (dpad,
// grab, toggle, threshold) the manifest loader creates when a binding
// source can't be suggested to OpenXR directly, per spec §4.6. Every
// evaluator shares the same shape: a small latch of state, a State
// method returning an optional bool action-state, and per-sync
// memoization of repeated reads via Set.
package bindings

import (
	"context"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// Evaluator produces a bool action state from underlying OpenXR action
// reads, or nil if it has no opinion (e.g. its inputs aren't bound in
// the active interaction profile).
type Evaluator interface {
	State(ctx context.Context, subactionPath openxr.Path) (*openxr.ActionStateBool, error)
}

// Or combines a direct boolean binding's state (may be nil) with every
// custom evaluator's state for the same action and hand into one
// visible result: logical OR of current states, active if any input
// was active, changed if any input changed (spec §4.6 "Ordering").
func Or(states ...*openxr.ActionStateBool) *openxr.ActionStateBool {
	var out *openxr.ActionStateBool
	for _, s := range states {
		if s == nil {
			continue
		}
		if out == nil {
			v := *s
			out = &v
			continue
		}
		out.CurrentState = out.CurrentState || s.CurrentState
		out.IsActive = out.IsActive || s.IsActive
		out.Changed = out.Changed || s.Changed
		if s.LastChangeTime.After(out.LastChangeTime) {
			out.LastChangeTime = s.LastChangeTime
		}
	}
	return out
}
