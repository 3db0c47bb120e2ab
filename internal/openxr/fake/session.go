package fake

import (
	"context"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// HapticCall records one ApplyHapticFeedback/StopHapticFeedback
// invocation, for test assertions.
type HapticCall struct {
	Action        *Action
	SubactionPath openxr.Path
	Vibration     openxr.HapticVibration
	Stopped       bool
}

// Session is a fake openxr.Session.
type Session struct {
	attached bool

	locations map[*Space]openxr.SpaceLocation

	syncCount   int
	lastSynced  []openxr.ActiveActionSet
	hapticCalls []HapticCall

	// Now lets tests pin the clock SyncActions stamps onto action
	// states; defaults to time.Now if unset.
	Now func() time.Time
}

// NewSession returns an unattached Session.
func NewSession() *Session {
	return &Session{locations: make(map[*Space]openxr.SpaceLocation)}
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Session) AttachActionSets(_ context.Context, sets []openxr.ActionSet) error {
	s.attached = true
	return nil
}

func (s *Session) SyncActions(_ context.Context, activeSets []openxr.ActiveActionSet) error {
	if !s.attached {
		return errNotAttached
	}
	now := s.now()
	for _, active := range activeSets {
		fs, ok := active.Set.(*ActionSet)
		if !ok {
			return errNotFakeActionSet
		}
		for _, a := range fs.actions {
			a.sync(now)
		}
	}
	s.syncCount++
	s.lastSynced = activeSets
	return nil
}

func (s *Session) CreateReferenceSpace(_ context.Context, kind openxr.ReferenceSpaceType) (openxr.Space, error) {
	return &Space{kind: openxr.SpaceKindReference, referenceKind: kind}, nil
}

func (s *Session) LocateSpace(_ context.Context, space, _ openxr.Space, _ time.Time) (openxr.SpaceLocation, error) {
	fs, ok := space.(*Space)
	if !ok {
		return openxr.SpaceLocation{}, errNotFakeSpace
	}
	return s.locations[fs], nil
}

// SetSpaceLocation sets the location LocateSpace will return for space,
// for tests to drive pose resolution.
func (s *Session) SetSpaceLocation(space openxr.Space, loc openxr.SpaceLocation) {
	if fs, ok := space.(*Space); ok {
		s.locations[fs] = loc
	}
}

func (s *Session) ApplyHapticFeedback(_ context.Context, action openxr.Action, subactionPath openxr.Path, vibration openxr.HapticVibration) error {
	fa, ok := action.(*Action)
	if !ok {
		return errNotFakeAction
	}
	s.hapticCalls = append(s.hapticCalls, HapticCall{Action: fa, SubactionPath: subactionPath, Vibration: vibration})
	return nil
}

func (s *Session) StopHapticFeedback(_ context.Context, action openxr.Action, subactionPath openxr.Path) error {
	fa, ok := action.(*Action)
	if !ok {
		return errNotFakeAction
	}
	s.hapticCalls = append(s.hapticCalls, HapticCall{Action: fa, SubactionPath: subactionPath, Stopped: true})
	return nil
}

// SyncCount returns how many times SyncActions has been called.
func (s *Session) SyncCount() int { return s.syncCount }

// HapticCalls returns every haptic call recorded so far, for test
// assertions.
func (s *Session) HapticCalls() []HapticCall {
	return append([]HapticCall(nil), s.hapticCalls...)
}

var _ openxr.Session = (*Session)(nil)
