// Package events implements the OpenVR event queue: a FIFO the core
// appends to from several producers (profile changes, legacy button
// transitions, an external overlay collaborator) and the host drains
// one at a time via PollNextEvent.
package events

import (
	"sync"

	"github.com/Supreeeme/xrizer/internal/ovr"
)

// PoseFiller fills an event's pose-output slot when the caller
// requests one alongside PollNextEvent, resolved against the caller's
// chosen tracking-universe origin. internal/session implements this
// by delegating to internal/pose.
type PoseFiller interface {
	GetPose(deviceIndex uint32, origin int) (ovr.TrackedDevicePose, bool)
}

// Queue is a mutex-protected FIFO of pending events, held only for
// the duration of one push or pop (spec §5).
type Queue struct {
	mu     sync.Mutex
	events []ovr.Event
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev to the tail of the queue.
func (q *Queue) Push(ev ovr.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// PollNext pops the head event, if any.
func (q *Queue) PollNext() (ovr.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return ovr.Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// PollNextWithPose pops the head event and additionally resolves the
// popped event's device pose against origin, for
// IVRSystem::PollNextEventWithPose.
func (q *Queue) PollNextWithPose(origin int, filler PoseFiller) (ovr.Event, ovr.TrackedDevicePose, bool) {
	ev, ok := q.PollNext()
	if !ok {
		return ovr.Event{}, ovr.Invalid(), false
	}
	pose, ok := filler.GetPose(ev.TrackedDeviceIndex, origin)
	if !ok {
		pose = ovr.Invalid()
	}
	return ev, pose, true
}

// Len reports how many events are currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Snapshot returns a copy of every currently queued event, in poll
// order, without draining the queue. Unlike PollNext, it is safe for a
// read-only observer (internal/diagnostics) to call repeatedly.
func (q *Queue) Snapshot() []ovr.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]ovr.Event, len(q.events))
	copy(out, q.events)
	return out
}
