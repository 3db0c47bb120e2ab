package ovr

// EventType mirrors the small subset of EVREventType the core can raise:
// button/tracking/device-connection transitions on the event queue
// (spec §4.8).
type EventType uint32

const (
	EventTrackedDeviceActivated EventType = 100 + iota
	EventTrackedDeviceDeactivated
	EventTrackedDeviceUpdated
)

const (
	EventButtonPress EventType = 200 + iota
	EventButtonUnpress
	EventButtonTouch
	EventButtonUntouch
)

// EventDataController carries a button id for button press/touch events.
type EventDataController struct {
	Button uint32
}

// Event is the wire shape of VREvent_t restricted to the fields the core
// populates: event type, the originating device index, and the
// event-specific payload union (only the controller-button member is
// modeled; other members are zero).
type Event struct {
	Type               EventType
	TrackedDeviceIndex uint32
	EventAgeSeconds    float32
	Controller         EventDataController
}
