// Package session owns the per-session aggregate spec.md calls
// SessionData: the handle registry, tracked-device table, pose cache,
// event queue, legacy action set, skeletal actions, and the one-shot
// manifest-loaded-actions slot, all behind the reader/writer lock
// spec §5 prescribes. It implements pose.Source and events.PoseFiller
// so internal/pose and internal/events never depend on it directly,
// and it is the only package allowed to call logger.Fatal, since it is
// the only place an OpenXR inconsistency cannot be locally absorbed.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Supreeeme/xrizer/internal/aliasstore"
	"github.com/Supreeeme/xrizer/internal/devices"
	"github.com/Supreeeme/xrizer/internal/events"
	"github.com/Supreeeme/xrizer/internal/handle"
	"github.com/Supreeeme/xrizer/internal/legacy"
	"github.com/Supreeeme/xrizer/internal/logger"
	"github.com/Supreeeme/xrizer/internal/manifest"
	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/pose"
	"github.com/Supreeeme/xrizer/internal/profiles"
	"github.com/Supreeeme/xrizer/internal/skeletal"
)

const (
	poseSetName          = "xrizer-pose-set"
	poseSetLocalizedName = "XRizer Pose Set"
)

// Instance bundles the OpenXR instance/session pair Data is bound to,
// since the two are always replaced together across a restart.
type Instance struct {
	OpenXR  openxr.Instance
	Session openxr.Session
}

// Data is the per-session aggregate. The zero value is not usable;
// construct with New.
type Data struct {
	mu sync.RWMutex // guards every field below except activeSets and poses/events/handles/devices, which have their own locks

	instance openxr.Instance
	sess     openxr.Session

	leftHand, rightHand openxr.Path

	handles *handle.Registry
	devices *devices.Table
	poses   *pose.Cache
	events  *events.Queue

	poseSet  openxr.ActionSet
	gripPose openxr.Action
	aimPose  openxr.Action

	legacyActions  *legacy.Actions
	legacyState    *legacy.State
	legacyAttached bool

	skeletalActions *skeletal.Actions
	skeletalEst     *skeletal.Estimator

	manifestLoader *manifest.Loader
	loaded         *manifest.LoadedActions
	manifestPath   string

	viewSpace     openxr.Space
	refSpaces     map[pose.Origin]openxr.Space
	gripSpaces    map[uint32]openxr.Space
	aimSpaces     map[uint32]openxr.Space
	trackerSpaces map[uint32]openxr.Space

	activeSetsMu sync.Mutex
	activeSets   map[string]bool

	restarter Restarter

	aliasCache *aliasstore.Store

	now func() time.Time
}

// SetAliasCache attaches an alias/binding cache (SPEC_FULL.md §4.9) to
// every manifest load this session performs from now on, including
// across a future restart. A nil cache (the default) simply means
// every load recomputes everything, which is always correct.
func (d *Data) SetAliasCache(cache *aliasstore.Store) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.aliasCache = cache
	if d.manifestLoader != nil {
		d.manifestLoader.Cache = cache
	}
}

// New builds a Data bound to inst, creating the shared pose-action set
// and the skeletal action set (neither attached yet; attachment
// happens on first FrameStartUpdate or the first successful
// SetActionManifestPath, whichever comes first). restarter may be nil
// if the caller never intends to load a manifest after legacy actions
// have attached; a restart attempt with a nil restarter is fatal.
func New(ctx context.Context, inst Instance, restarter Restarter) (*Data, error) {
	d := &Data{
		handles:       handle.NewRegistry(),
		devices:       devices.NewTable(),
		poses:         pose.NewCache(),
		events:        events.NewQueue(),
		refSpaces:     make(map[pose.Origin]openxr.Space),
		gripSpaces:    make(map[uint32]openxr.Space),
		aimSpaces:     make(map[uint32]openxr.Space),
		trackerSpaces: make(map[uint32]openxr.Space),
		activeSets:    make(map[string]bool),
		restarter:     restarter,
		now:           time.Now,
	}
	if err := d.bindInstance(ctx, inst); err != nil {
		return nil, err
	}
	return d, nil
}

// bindInstance (re)creates every object tied to one OpenXR
// instance/session pair: the fixed hand paths, the pose and skeletal
// action sets, the reference/view spaces, and the manifest loader. It
// is used both by New and by the restart path in
// SetActionManifestPath.
func (d *Data) bindInstance(ctx context.Context, inst Instance) error {
	left, err := inst.OpenXR.StringToPath(ctx, "/user/hand/left")
	if err != nil {
		return fmt.Errorf("session: intern left hand path: %w", err)
	}
	right, err := inst.OpenXR.StringToPath(ctx, "/user/hand/right")
	if err != nil {
		return fmt.Errorf("session: intern right hand path: %w", err)
	}

	poseSet, err := inst.OpenXR.CreateActionSet(ctx, poseSetName, poseSetLocalizedName, 0)
	if err != nil {
		return fmt.Errorf("session: create pose action set: %w", err)
	}
	leftRight := []openxr.Path{left, right}
	gripPose, err := inst.OpenXR.CreateAction(ctx, poseSet, "grip-pose", "Grip Pose", openxr.ActionTypePose, leftRight)
	if err != nil {
		return fmt.Errorf("session: create grip pose action: %w", err)
	}
	aimPose, err := inst.OpenXR.CreateAction(ctx, poseSet, "aim-pose", "Aim Pose", openxr.ActionTypePose, leftRight)
	if err != nil {
		return fmt.Errorf("session: create aim pose action: %w", err)
	}

	skeletalActions, err := skeletal.NewActions(ctx, inst.OpenXR, left, right)
	if err != nil {
		return fmt.Errorf("session: create skeletal actions: %w", err)
	}

	loader, err := manifest.NewLoader(ctx, inst.OpenXR, inst.Session)
	if err != nil {
		return fmt.Errorf("session: create manifest loader: %w", err)
	}
	loader.ExtraSets = []openxr.ActionSet{poseSet, skeletalActions.Set}
	loader.Cache = d.aliasCache

	viewSpace, err := inst.Session.CreateReferenceSpace(ctx, openxr.ReferenceSpaceView)
	if err != nil {
		return fmt.Errorf("session: create view space: %w", err)
	}
	localSpace, err := inst.Session.CreateReferenceSpace(ctx, openxr.ReferenceSpaceLocal)
	if err != nil {
		return fmt.Errorf("session: create local reference space: %w", err)
	}
	stageSpace, err := inst.Session.CreateReferenceSpace(ctx, openxr.ReferenceSpaceStage)
	if err != nil {
		return fmt.Errorf("session: create stage reference space: %w", err)
	}

	grip := map[uint32]openxr.Space{}
	aim := map[uint32]openxr.Space{}
	for _, dv := range []struct {
		index uint32
		hand  openxr.Path
	}{
		{ovr.DeviceIndexLeftHand, left},
		{ovr.DeviceIndexRightHand, right},
	} {
		gs, err := gripPose.CreateSpace(ctx, dv.hand)
		if err != nil {
			return fmt.Errorf("session: create grip space: %w", err)
		}
		grip[dv.index] = gs
		as, err := aimPose.CreateSpace(ctx, dv.hand)
		if err != nil {
			return fmt.Errorf("session: create aim space: %w", err)
		}
		aim[dv.index] = as
	}

	d.instance = inst.OpenXR
	d.sess = inst.Session
	d.leftHand, d.rightHand = left, right
	d.poseSet, d.gripPose, d.aimPose = poseSet, gripPose, aimPose
	d.skeletalActions = skeletalActions
	d.skeletalEst = skeletal.NewEstimator(skeletalActions)
	d.manifestLoader = loader
	d.viewSpace = viewSpace
	d.refSpaces = map[pose.Origin]openxr.Space{
		pose.OriginSeated:             localSpace,
		pose.OriginStanding:           stageSpace,
		pose.OriginRawAndUncalibrated: stageSpace,
	}
	d.gripSpaces = grip
	d.aimSpaces = aim
	d.legacyActions = nil
	d.legacyState = nil
	d.legacyAttached = false
	d.loaded = nil
	d.manifestPath = ""

	return nil
}

// Handles returns the session's handle registry.
func (d *Data) Handles() *handle.Registry { return d.handles }

// Devices returns the session's tracked-device table.
func (d *Data) Devices() *devices.Table { return d.devices }

// Poses returns the session's pose cache.
func (d *Data) Poses() *pose.Cache { return d.poses }

// Events returns the session's event queue.
func (d *Data) Events() *events.Queue { return d.events }

// SkeletalEstimator returns the session's skeletal bone/summary
// estimator.
func (d *Data) SkeletalEstimator() *skeletal.Estimator { return d.skeletalEst }

// Loaded returns the manifest-loaded-actions table, if a manifest has
// been loaded.
func (d *Data) Loaded() (*manifest.LoadedActions, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded, d.loaded != nil
}

// ManifestPath returns the path last passed to SetActionManifestPath,
// if any.
func (d *Data) ManifestPath() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.manifestPath, d.manifestPath != ""
}

// LegacyActions returns the legacy action set's actions and state, if
// the legacy set has been bootstrapped for this session (i.e. at
// least one FrameStartUpdate has run with no manifest loaded).
func (d *Data) LegacyActions() (*legacy.Actions, *legacy.State, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.legacyActions, d.legacyState, d.legacyAttached
}

// ensureLegacyAttached performs the legacy bootstrap described in
// spec §4.4 ("on first frame_start_update after session is ready")
// exactly once per session, unless a manifest has since become the
// source of truth.
func (d *Data) ensureLegacyAttached(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded != nil || d.legacyAttached {
		return nil
	}

	actions, state, err := legacy.Setup(ctx, d.instance, d.sess, d.leftHand, d.rightHand, d.gripPose, d.aimPose, d.poseSet, d.skeletalActions.Set)
	if err != nil {
		return fmt.Errorf("session: bootstrap legacy actions: %w", err)
	}
	d.legacyActions = actions
	d.legacyState = state
	d.legacyAttached = true
	return nil
}

// FrameStartUpdate is frame_start_update: it clears the pose cache for
// the new frame and, while no manifest has been loaded, bootstraps (on
// the first call) and re-syncs the legacy action set every frame
// (spec §4.4). Once a manifest is loaded, syncing is driven entirely
// by UpdateActionState instead.
func (d *Data) FrameStartUpdate(ctx context.Context) error {
	d.poses.ClearAll()

	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if loaded != nil {
		return nil
	}

	if err := d.ensureLegacyAttached(ctx); err != nil {
		return err
	}

	d.mu.RLock()
	sess := d.sess
	legacySet := d.legacyActions.Set
	d.mu.RUnlock()

	if err := sess.SyncActions(ctx, []openxr.ActiveActionSet{{Set: legacySet, SubactionPath: openxr.NullPath}}); err != nil {
		return fmt.Errorf("session: sync legacy actions: %w", err)
	}
	d.legacyState.OnActionSync()
	return nil
}

// UpdateActionState is UpdateActionState: it syncs the action sets
// named by setPaths (plus the manifest's always-on info set, or the
// legacy set when no manifest is loaded) and records which sets are
// now active for this frame. Per spec §7, calling it with no sets is
// ErrNoActiveActionSet.
func (d *Data) UpdateActionState(ctx context.Context, setPaths []string) *ovr.Error {
	if len(setPaths) == 0 {
		return ovr.NewNoActiveActionSet("UpdateActionState")
	}

	d.activeSetsMu.Lock()
	d.activeSets = make(map[string]bool, len(setPaths))
	for _, p := range setPaths {
		d.activeSets[strings.ToLower(p)] = true
	}
	d.activeSetsMu.Unlock()

	d.mu.RLock()
	sess := d.sess
	loaded := d.loaded
	legacyActions := d.legacyActions
	d.mu.RUnlock()

	var active []openxr.ActiveActionSet
	if loaded != nil {
		for _, p := range setPaths {
			if set, ok := loaded.Sets[strings.ToLower(p)]; ok {
				active = append(active, openxr.ActiveActionSet{Set: set, SubactionPath: openxr.NullPath})
			}
		}
		active = append(active, openxr.ActiveActionSet{Set: loaded.InfoSet, SubactionPath: openxr.NullPath})
	} else if legacyActions != nil {
		active = append(active, openxr.ActiveActionSet{Set: legacyActions.Set, SubactionPath: openxr.NullPath})
	} else {
		return nil
	}

	if err := sess.SyncActions(ctx, active); err != nil {
		return ovr.NewInvalidParam("UpdateActionState", err.Error())
	}
	if loaded == nil {
		d.legacyState.OnActionSync()
	}
	return nil
}

// ActiveActionSet reports whether setPath was named in the most recent
// UpdateActionState call.
func (d *Data) ActiveActionSet(setPath string) bool {
	d.activeSetsMu.Lock()
	defer d.activeSetsMu.Unlock()
	return d.activeSets[strings.ToLower(setPath)]
}

// OnInteractionProfileChanged updates deviceIndex's bound profile and
// connection state from an xrGetCurrentInteractionProfile result,
// enqueueing an activation/deactivation event on change and clearing
// cached poses/raw-space offsets (spec §4.1, §4.8).
func (d *Data) OnInteractionProfileChanged(deviceIndex uint32, profilePath string) {
	dev, ok := d.devices.Device(deviceIndex)
	if !ok {
		return
	}
	connected := profilePath != ""
	p := profiles.ByPath(profilePath)
	if !connected {
		p = nil
	}
	dev.SetProfile(p, profilePath)
	if dev.SetConnected(connected) {
		d.events.PushDeviceActivation(deviceIndex, connected)
	}
	d.poses.ClearAll()
	d.poses.ClearRawSpaces()
}

// Haptic triggers legacy_haptic's vibration on subactionPath (the
// fixed legacy haptic action), or, once a manifest is loaded, reroutes
// to the manifest's first declared vibration action unrestricted by
// subaction path (spec §4.4).
func (d *Data) Haptic(ctx context.Context, subactionPath openxr.Path, duration time.Duration) error {
	d.mu.RLock()
	sess := d.sess
	loaded := d.loaded
	legacyActions := d.legacyActions
	d.mu.RUnlock()

	if loaded != nil {
		action, ok := loaded.FirstHapticAction()
		if !ok {
			return nil
		}
		return sess.ApplyHapticFeedback(ctx, action, openxr.NullPath, openxr.HapticVibration{Duration: duration, Frequency: 0, Amplitude: 1.0})
	}
	if legacyActions == nil {
		return nil
	}
	return legacy.Haptic(ctx, sess, legacyActions, subactionPath, duration)
}

// SetActionManifestPath implements spec §4.5: it fetches and decodes
// the manifest document at path, restarts the session first if legacy
// actions are already attached (step 6), runs the loader, and stores
// the result under the one-shot manifest slot.
func (d *Data) SetActionManifestPath(ctx context.Context, path string, fetchManifest FetchManifest, fetchBinding manifest.FetchBindingFile) error {
	if fetchManifest == nil {
		fetchManifest = ReadLocalManifest
	}

	raw, err := fetchManifest(path)
	if err != nil {
		return fmt.Errorf("session: fetch manifest %q: %w", path, err)
	}
	doc, err := decodeManifest(raw)
	if err != nil {
		return fmt.Errorf("session: decode manifest %q: %w", path, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.legacyAttached && d.loaded == nil {
		if err := d.restart(ctx); err != nil {
			return err
		}
	}

	loaded, err := d.manifestLoader.Load(ctx, doc, fetchBinding)
	if err != nil {
		return fmt.Errorf("session: load manifest %q: %w", path, err)
	}

	d.loaded = loaded
	d.manifestPath = path
	d.poses.ClearAll()
	d.poses.ClearRawSpaces()
	return nil
}

// restart obtains a fresh OpenXR instance/session pair and rebinds
// every object tied to the old one. Per spec §7, a restart failure
// leaves internal state inconsistent (the old session may already be
// torn down) and is therefore fatal. Caller must hold d.mu for
// writing.
func (d *Data) restart(ctx context.Context) error {
	if d.restarter == nil {
		logger.Fatal("session: manifest load requires a restart but no restarter is configured")
		return nil // unreachable; logger.Fatal exits the process
	}

	fresh, err := d.restarter.Restart(ctx)
	if err != nil {
		logger.Fatal("session: restart failed, internal state may be inconsistent", "error", err)
		return nil // unreachable
	}

	if err := d.bindInstance(ctx, fresh); err != nil {
		logger.Fatal("session: rebinding after restart failed", "error", err)
		return nil // unreachable
	}
	return nil
}

// Session returns the current OpenXR session, implementing
// pose.Source.
func (d *Data) Session() openxr.Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sess
}

// ReferenceSpace implements pose.Source.
func (d *Data) ReferenceSpace(origin pose.Origin) (openxr.Space, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sp, ok := d.refSpaces[origin]
	return sp, ok
}

// ViewSpace implements pose.Source.
func (d *Data) ViewSpace() (openxr.Space, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.viewSpace, d.viewSpace != nil
}

// GripSpace implements pose.Source. It always resolves to the shared
// legacy-style grip-pose action space; a manifest-bound custom pose
// action is not served through it or through the pose cache (Open
// Question, see DESIGN.md).
func (d *Data) GripSpace(deviceIndex uint32) (openxr.Space, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sp, ok := d.gripSpaces[deviceIndex]
	return sp, ok
}

// AimSpace implements pose.Source.
func (d *Data) AimSpace(deviceIndex uint32) (openxr.Space, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sp, ok := d.aimSpaces[deviceIndex]
	return sp, ok
}

// TrackerSpace implements pose.Source. Trackers are registered
// externally via RegisterTrackerSpace once their pose action or
// direct device space is resolved.
func (d *Data) TrackerSpace(deviceIndex uint32) (openxr.Space, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sp, ok := d.trackerSpaces[deviceIndex]
	return sp, ok
}

// RegisterTrackerSpace records the space a newly enumerated generic
// tracker should be located against.
func (d *Data) RegisterTrackerSpace(deviceIndex uint32, space openxr.Space) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.trackerSpaces[deviceIndex] = space
}

// Now implements pose.Source.
func (d *Data) Now() time.Time {
	d.mu.RLock()
	now := d.now
	d.mu.RUnlock()
	return now()
}

// GetPose implements events.PoseFiller, resolving deviceIndex's pose
// against origin through the shared pose cache.
func (d *Data) GetPose(deviceIndex uint32, origin int) (ovr.TrackedDevicePose, bool) {
	dev, ok := d.devices.Device(deviceIndex)
	if !ok {
		return ovr.Invalid(), false
	}
	isController := deviceIndex == ovr.DeviceIndexLeftHand || deviceIndex == ovr.DeviceIndexRightHand
	p, xerr := d.poses.GetPose(context.Background(), d, deviceIndex, pose.Origin(origin), isController, dev.Connected())
	return p, xerr == nil
}

var (
	_ pose.Source       = (*Data)(nil)
	_ events.PoseFiller = (*Data)(nil)
)
