package bindings

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

const (
	defaultThresholdClick   = 0.25
	defaultThresholdRelease = 0.20
)

// Threshold compares a float (or vector2 magnitude) source against
// click/release thresholds with hysteresis, per spec §4.6.
type Threshold struct {
	Float            openxr.Action // set exactly one of Float or Vector2
	Vector2          openxr.Action
	ClickThreshold   float32
	ReleaseThreshold float32

	mu    sync.Mutex
	state bool
}

// NewThresholdFloat returns a Threshold evaluator over a float source.
func NewThresholdFloat(source openxr.Action, clickThreshold, releaseThreshold float32) *Threshold {
	return newThreshold(source, nil, clickThreshold, releaseThreshold)
}

// NewThresholdVector2 returns a Threshold evaluator over a vector2
// source's magnitude.
func NewThresholdVector2(source openxr.Action, clickThreshold, releaseThreshold float32) *Threshold {
	return newThreshold(nil, source, clickThreshold, releaseThreshold)
}

func newThreshold(float, vec2 openxr.Action, click, release float32) *Threshold {
	if click == 0 {
		click = defaultThresholdClick
	}
	if release == 0 {
		release = defaultThresholdRelease
	}
	return &Threshold{Float: float, Vector2: vec2, ClickThreshold: click, ReleaseThreshold: release}
}

func (th *Threshold) State(ctx context.Context, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	var (
		isActive      bool
		currentValue  float32
		lastChangeTime time.Time
	)
	if th.Float != nil {
		s, err := th.Float.Float(ctx, subactionPath)
		if err != nil {
			return nil, err
		}
		isActive, currentValue, lastChangeTime = s.IsActive, s.CurrentState, s.LastChangeTime
	} else {
		s, err := th.Vector2.Vector2f(ctx, subactionPath)
		if err != nil {
			return nil, err
		}
		isActive = s.IsActive
		currentValue = float32(math.Hypot(float64(s.X), float64(s.Y)))
		lastChangeTime = s.LastChangeTime
	}

	if !isActive {
		return nil, nil
	}

	th.mu.Lock()
	defer th.mu.Unlock()
	prev := th.state
	threshold := th.ClickThreshold
	if prev {
		threshold = th.ReleaseThreshold
	}
	current := currentValue >= threshold
	th.state = current

	return &openxr.ActionStateBool{
		IsActive:       true,
		CurrentState:   current,
		Changed:        current != prev,
		LastChangeTime: lastChangeTime,
	}, nil
}
