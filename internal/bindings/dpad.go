package bindings

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// Direction is one of a dpad's four cardinal wedges, or its center
// zone, per spec §4.6.
type Direction int

const (
	DirectionNorth Direction = iota
	DirectionEast
	DirectionSouth
	DirectionWest
	DirectionCenter
)

const (
	dpadCenterZone       = 0.5
	dpadClickThreshold   = 0.33
	dpadReleaseThreshold = 0.20
	minHapticDuration    = time.Nanosecond
)

// Dpad evaluates one direction of a vector2 source (stick or
// trackpad) as a boolean, with optional force/touch activation and a
// haptic pulse on entry.
type Dpad struct {
	XY        openxr.Action // vector2
	Activator openxr.Action // optional float; nil means "always active"
	Haptic    openxr.Action // optional vibration action
	Session   openxr.Session
	Direction Direction

	mu     sync.Mutex
	active bool // latched: was this wedge (or the activator) active last read
}

// NewDpad returns a Dpad evaluator for one direction of xy, optionally
// gated by activator and paired with haptic, to be bound via session.
func NewDpad(session openxr.Session, xy, activator, haptic openxr.Action, direction Direction) *Dpad {
	return &Dpad{XY: xy, Activator: activator, Haptic: haptic, Session: session, Direction: direction}
}

func (d *Dpad) State(ctx context.Context, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	parent, err := d.XY.Vector2f(ctx, subactionPath)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	lastActive := d.active
	d.mu.Unlock()

	activationThreshold := dpadClickThreshold
	if lastActive {
		activationThreshold = dpadReleaseThreshold
	}

	active := true
	if d.Activator != nil {
		activatorState, err := d.Activator.Float(ctx, subactionPath)
		if err != nil {
			return nil, err
		}
		active = !activatorState.IsActive || activatorState.CurrentState > activationThreshold
	}

	if !active {
		d.mu.Lock()
		d.active = false
		d.mu.Unlock()
		return nil, nil
	}

	radius := math.Hypot(float64(parent.X), float64(parent.Y))
	angle := math.Atan2(float64(parent.Y), float64(parent.X))

	inBounds := d.inDirection(radius, angle)

	d.mu.Lock()
	changed := d.active != inBounds
	d.active = inBounds
	d.mu.Unlock()

	if changed && inBounds && d.Haptic != nil && d.Session != nil {
		_ = d.Session.ApplyHapticFeedback(ctx, d.Haptic, subactionPath, openxr.HapticVibration{
			Duration:  minHapticDuration,
			Frequency: 0,
			Amplitude: 0.25,
		})
	}

	return &openxr.ActionStateBool{
		IsActive:       true,
		CurrentState:   inBounds,
		Changed:        changed,
		LastChangeTime: parent.LastChangeTime,
	}, nil
}

func (d *Dpad) inDirection(radius, angle float64) bool {
	const quarterPi = math.Pi / 4
	switch d.Direction {
	case DirectionNorth:
		return radius >= dpadCenterZone && angle >= quarterPi && angle <= 3*quarterPi
	case DirectionEast:
		return radius >= dpadCenterZone && angle >= -quarterPi && angle <= quarterPi
	case DirectionSouth:
		return radius >= dpadCenterZone && angle >= -3*quarterPi && angle <= -quarterPi
	case DirectionWest:
		return radius >= dpadCenterZone && (angle >= 3*quarterPi && angle <= math.Pi || angle >= -math.Pi && angle <= -3*quarterPi)
	default: // DirectionCenter
		return radius < dpadCenterZone
	}
}
