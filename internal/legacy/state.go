package legacy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Supreeeme/xrizer/internal/events"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

// State tracks the legacy action set's per-frame packet counter and
// the per-hand "already reported an event this sync" latch used to
// avoid double-enqueuing button transitions when a controller's state
// is polled more than once between syncs.
type State struct {
	packetNum        atomic.Uint32
	gotStateThisSync [2]atomic.Bool // index 0 = left, 1 = right
}

// NewState returns a zeroed legacy state.
func NewState() *State {
	return &State{}
}

// OnActionSync bumps the packet counter and clears both hands' latch,
// called once per xrSyncActions of the legacy action set.
func (s *State) OnActionSync() {
	s.packetNum.Add(1)
	for i := range s.gotStateThisSync {
		s.gotStateThisSync[i].Store(false)
	}
}

func handSlot(hand string) int {
	if hand == "right" {
		return 1
	}
	return 0
}

// GetControllerState composes a VRControllerState_t-shaped snapshot
// for one controller from the legacy action set's current state,
// enqueuing press/unpress/touch/untouch events on queue the first time
// this hand's state is read since the last sync (spec §4.4).
func GetControllerState(
	ctx context.Context,
	actions *Actions,
	state *State,
	queue *events.Queue,
	deviceIndex uint32,
	hand string,
	subactionPath openxr.Path,
) (ovr.ControllerState, error) {
	var out ovr.ControllerState
	out.PacketNum = state.packetNum.Load()

	slot := handSlot(hand)
	emit := state.gotStateThisSync[slot].CompareAndSwap(false, true)

	readButton := func(id ovr.ButtonID, click openxr.Action, touch openxr.Action) error {
		if touch != nil {
			touchState, err := touch.Bool(ctx, subactionPath)
			if err != nil {
				return err
			}
			if touchState.CurrentState {
				out.ButtonTouched |= ovr.ButtonMask(id)
			}
			if emit && touchState.Changed {
				queue.PushButtonTransition(deviceIndex, id, true, touchState.CurrentState)
			}
		}

		clickState, err := click.Bool(ctx, subactionPath)
		if err != nil {
			return err
		}
		if clickState.CurrentState {
			out.ButtonPressed |= ovr.ButtonMask(id)
		}
		if emit && clickState.Changed {
			queue.PushButtonTransition(deviceIndex, id, false, clickState.CurrentState)
		}
		return nil
	}

	if err := readButton(ovr.ButtonAxis0, actions.MainXYClick, actions.MainXYTouch); err != nil {
		return out, err
	}
	if err := readButton(ovr.ButtonSteamVRTrigger, actions.TriggerClick, nil); err != nil {
		return out, err
	}
	if err := readButton(ovr.ButtonApplicationMenu, actions.AppMenu, nil); err != nil {
		return out, err
	}
	if err := readButton(ovr.ButtonA, actions.A, nil); err != nil {
		return out, err
	}
	if err := readButton(ovr.ButtonGrip, actions.SqueezeClick, nil); err != nil {
		return out, err
	}
	if err := readButton(ovr.ButtonAxis2, actions.SqueezeClick, nil); err != nil {
		return out, err
	}
	xy, err := actions.MainXY.Vector2f(ctx, subactionPath)
	if err != nil {
		return out, err
	}
	out.Axis[ovr.AxisStickOrPad] = ovr.ControllerAxis{X: xy.X, Y: xy.Y}

	trigger, err := actions.Trigger.Float(ctx, subactionPath)
	if err != nil {
		return out, err
	}
	out.Axis[ovr.AxisTrigger] = ovr.ControllerAxis{X: trigger.CurrentState}

	squeeze, err := actions.Squeeze.Float(ctx, subactionPath)
	if err != nil {
		return out, err
	}
	out.Axis[ovr.AxisGrip] = ovr.ControllerAxis{X: squeeze.CurrentState}

	return out, nil
}

// Haptic triggers a full-amplitude, unspecified-frequency vibration of
// duration on the legacy haptic action for subactionPath.
func Haptic(ctx context.Context, session openxr.Session, actions *Actions, subactionPath openxr.Path, duration time.Duration) error {
	return session.ApplyHapticFeedback(ctx, actions.Haptic, subactionPath, openxr.HapticVibration{
		Duration:  duration,
		Frequency: 0,
		Amplitude: 1.0,
	})
}
