package pose

import (
	"context"
	"sync"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
)

type cacheKey struct {
	device uint32
	origin Origin
}

// rawSpaceState memoizes a controller's grip-to-aim offset, computed
// once per session on first successful use (spec §4.3). Until it
// succeeds, every frame retries the computation.
type rawSpaceState struct {
	ready  bool
	offset openxr.SpaceLocation
}

// Cache resolves and memoizes tracked-device poses for the span
// between two frame-start updates. A single mutex guards both the
// pose slots and the raw-space offsets; it is only ever held for the
// duration of one read-and-fill.
type Cache struct {
	mu        sync.Mutex
	poses     map[cacheKey]ovr.TrackedDevicePose
	rawSpaces map[uint32]*rawSpaceState
}

// NewCache returns an empty pose cache.
func NewCache() *Cache {
	return &Cache{
		poses:     make(map[cacheKey]ovr.TrackedDevicePose),
		rawSpaces: make(map[uint32]*rawSpaceState),
	}
}

// ClearAll drops every memoized pose. Called on frame_start_update,
// reference-space changes, and interaction-profile changes.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poses = make(map[cacheKey]ovr.TrackedDevicePose)
}

// ClearRawSpaces additionally forgets every controller's grip-to-aim
// offset, for a full interaction-profile-change reset.
func (c *Cache) ClearRawSpaces() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rawSpaces = make(map[uint32]*rawSpaceState)
}

// GetPose returns the memoized pose for (device, origin) if present,
// otherwise resolves it against src and memoizes the result.
func (c *Cache) GetPose(ctx context.Context, src Source, deviceIndex uint32, origin Origin, isController, connected bool) (ovr.TrackedDevicePose, *ovr.Error) {
	key := cacheKey{device: deviceIndex, origin: origin}

	c.mu.Lock()
	if p, ok := c.poses[key]; ok {
		c.mu.Unlock()
		return p, nil
	}
	c.mu.Unlock()

	if !connected {
		p := ovr.Invalid()
		c.mu.Lock()
		c.poses[key] = p
		c.mu.Unlock()
		return p, nil
	}

	p, err := c.resolve(ctx, src, deviceIndex, origin, isController)
	if err != nil {
		return ovr.Invalid(), err
	}

	c.mu.Lock()
	c.poses[key] = p
	c.mu.Unlock()
	return p, nil
}

func (c *Cache) resolve(ctx context.Context, src Source, deviceIndex uint32, origin Origin, isController bool) (ovr.TrackedDevicePose, *ovr.Error) {
	const op = "GetPose"

	ref, ok := src.ReferenceSpace(origin)
	if !ok {
		return ovr.Invalid(), ovr.NewInvalidParam(op, "reference space unavailable")
	}

	if deviceIndex == ovr.DeviceIndexHmd {
		vs, ok := src.ViewSpace()
		if !ok {
			return ovr.Invalid(), ovr.NewInvalidDevice(op)
		}
		loc, xerr := src.Session().LocateSpace(ctx, vs, ref, src.Now())
		if xerr != nil {
			return ovr.Invalid(), ovr.NewInvalidParam(op, xerr.Error())
		}
		return locationToPose(loc, true), nil
	}

	if isController {
		return c.resolveController(ctx, src, ref, deviceIndex)
	}

	ts, ok := src.TrackerSpace(deviceIndex)
	if !ok {
		return ovr.Invalid(), ovr.NewInvalidDevice(op)
	}
	loc, xerr := src.Session().LocateSpace(ctx, ts, ref, src.Now())
	if xerr != nil {
		return ovr.Invalid(), ovr.NewInvalidParam(op, xerr.Error())
	}
	return locationToPose(loc, true), nil
}

// resolveController locates the controller's grip space against ref,
// then shifts its reported position by the cached (aim - grip) offset
// so the reported pose sits at the aim position with the grip
// orientation, matching OpenVR's device-pose convention (spec §4.3).
func (c *Cache) resolveController(ctx context.Context, src Source, ref openxr.Space, deviceIndex uint32) (ovr.TrackedDevicePose, *ovr.Error) {
	grip, ok := src.GripSpace(deviceIndex)
	if !ok {
		return ovr.Invalid(), ovr.NewInvalidDevice("GetPose")
	}

	offset, haveOffset := c.ensureRawOffset(ctx, src, deviceIndex, grip)
	if !haveOffset {
		return ovr.Invalid(), nil
	}

	loc, xerr := src.Session().LocateSpace(ctx, grip, ref, src.Now())
	if xerr != nil {
		return ovr.Invalid(), ovr.NewInvalidParam("GetPose", xerr.Error())
	}

	p := locationToPose(loc, true)
	p.DeviceToAbsoluteTracking[0][3] += offset.Position.X
	p.DeviceToAbsoluteTracking[1][3] += offset.Position.Y
	p.DeviceToAbsoluteTracking[2][3] += offset.Position.Z
	return p, nil
}

// ensureRawOffset returns the cached grip-to-aim position offset,
// computing it once on the first call where aim can be located.
func (c *Cache) ensureRawOffset(ctx context.Context, src Source, deviceIndex uint32, grip openxr.Space) (openxr.SpaceLocation, bool) {
	c.mu.Lock()
	state, exists := c.rawSpaces[deviceIndex]
	if !exists {
		state = &rawSpaceState{}
		c.rawSpaces[deviceIndex] = state
	}
	ready := state.ready
	offset := state.offset
	c.mu.Unlock()

	if ready {
		return offset, true
	}

	aim, ok := src.AimSpace(deviceIndex)
	if !ok {
		return openxr.SpaceLocation{}, false
	}
	loc, err := src.Session().LocateSpace(ctx, aim, grip, src.Now())
	if err != nil {
		return openxr.SpaceLocation{}, false
	}

	c.mu.Lock()
	state.ready = true
	state.offset = loc
	c.mu.Unlock()

	return loc, true
}
