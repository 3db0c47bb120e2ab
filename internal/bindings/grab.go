package bindings

import (
	"context"
	"sync"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

const (
	defaultGrabThreshold    = 0.70
	defaultReleaseThreshold = 0.65
)

// Grab latches a grabbed/not-grabbed boolean from a force+value pair
// of float sources, per spec §4.6.
type Grab struct {
	Force, Value     openxr.Action
	HoldThreshold    float32
	ReleaseThreshold float32

	mu        sync.Mutex
	lastState bool
}

// NewGrab returns a Grab evaluator over force and value, using
// SteamVR's default thresholds unless overridden (0 means "use
// default").
func NewGrab(force, value openxr.Action, holdThreshold, releaseThreshold float32) *Grab {
	if holdThreshold == 0 {
		holdThreshold = defaultGrabThreshold
	}
	if releaseThreshold == 0 {
		releaseThreshold = defaultReleaseThreshold
	}
	return &Grab{Force: force, Value: value, HoldThreshold: holdThreshold, ReleaseThreshold: releaseThreshold}
}

func (g *Grab) State(ctx context.Context, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	force, err := g.Force.Float(ctx, subactionPath)
	if err != nil {
		return nil, err
	}
	value, err := g.Value.Float(ctx, subactionPath)
	if err != nil {
		return nil, err
	}

	if !force.IsActive || !value.IsActive {
		g.mu.Lock()
		g.lastState = false
		g.mu.Unlock()
		return nil, nil
	}

	v := value.CurrentState
	if force.CurrentState > 0 {
		v = force.CurrentState + 1.0
	}

	g.mu.Lock()
	prevGrabbed := g.lastState
	grabbed := (prevGrabbed && v > g.ReleaseThreshold) || (!prevGrabbed && v >= g.HoldThreshold)
	g.lastState = grabbed
	g.mu.Unlock()

	return &openxr.ActionStateBool{
		IsActive:       true,
		CurrentState:   grabbed,
		Changed:        grabbed != prevGrabbed,
		LastChangeTime: force.LastChangeTime,
	}, nil
}
