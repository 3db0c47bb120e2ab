package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for input-core operations, following OpenTelemetry
// semantic conventions where applicable. Keys are grouped by the component
// that emits them.
const (
	// ========================================================================
	// Session / frame attributes
	// ========================================================================
	AttrFrameSeq    = "xrizer.frame.seq"
	AttrSyncSeq     = "xrizer.sync.seq"
	AttrSessionID   = "xrizer.session.id"
	AttrHasManifest = "xrizer.session.has_manifest"

	// ========================================================================
	// Handle / action attributes
	// ========================================================================
	AttrHandleKind  = "xrizer.handle.kind" // action, action_set, input_source
	AttrHandleValue = "xrizer.handle.value"
	AttrActionPath  = "xrizer.action.path"
	AttrActionKind  = "xrizer.action.kind" // boolean, vector1, vector2, pose, skeleton, haptic
	AttrActionSet   = "xrizer.action_set.path"

	// ========================================================================
	// Device / profile attributes
	// ========================================================================
	AttrDeviceIndex   = "xrizer.device.index"
	AttrDeviceClass   = "xrizer.device.class" // hmd, controller, tracker
	AttrHand          = "xrizer.device.hand"
	AttrProfilePath   = "xrizer.profile.path"
	AttrOrigin        = "xrizer.pose.origin" // seated, standing

	// ========================================================================
	// Manifest loader attributes
	// ========================================================================
	AttrManifestPath  = "xrizer.manifest.path"
	AttrManifestHash  = "xrizer.manifest.hash"
	AttrBindingURL    = "xrizer.manifest.binding_url"
	AttrBindingsCount = "xrizer.manifest.bindings_count"
	AttrCacheHit      = "xrizer.cache.hit"

	// ========================================================================
	// Custom binding attributes
	// ========================================================================
	AttrBindingKind = "xrizer.binding.kind" // dpad, grab, toggle, threshold
	AttrDirection   = "xrizer.binding.dpad_direction"
)

// Span names for operations.
const (
	SpanFrameStart     = "session.frame_start_update"
	SpanUpdateAction   = "session.update_action_state"
	SpanSyncLegacy     = "legacy.sync"
	SpanSyncManifest   = "manifest.sync"
	SpanPoseResolve    = "pose.resolve"
	SpanManifestLoad   = "manifest.load"
	SpanManifestFetch  = "manifestfetch.fetch"
	SpanBindingCreate  = "manifest.create_bindings"
	SpanBindingEval    = "bindings.evaluate"
	SpanSkeletalEval   = "skeletal.evaluate"
	SpanSessionRestart = "session.restart"
)

// FrameSeq returns an attribute for the current frame sequence number.
func FrameSeq(seq uint64) attribute.KeyValue {
	return attribute.Int64(AttrFrameSeq, int64(seq))
}

// SyncSeq returns an attribute for the current sync sequence number.
func SyncSeq(seq uint64) attribute.KeyValue {
	return attribute.Int64(AttrSyncSeq, int64(seq))
}

// HandleValue returns an attribute for a handle's raw numeric value.
func HandleValue(kind string, value uint64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrHandleKind, kind),
		attribute.Int64(AttrHandleValue, int64(value)),
	}
}

// ActionPath returns an attribute for an action's declared path.
func ActionPath(path string) attribute.KeyValue {
	return attribute.String(AttrActionPath, path)
}

// ActionKind returns an attribute for an action's kind.
func ActionKind(kind string) attribute.KeyValue {
	return attribute.String(AttrActionKind, kind)
}

// DeviceIndex returns an attribute for a tracked device index.
func DeviceIndex(index uint32) attribute.KeyValue {
	return attribute.Int64(AttrDeviceIndex, int64(index))
}

// ProfilePath returns an attribute for an interaction profile path.
func ProfilePath(path string) attribute.KeyValue {
	return attribute.String(AttrProfilePath, path)
}

// Hand returns an attribute for which hand a device/action applies to.
func Hand(hand string) attribute.KeyValue {
	return attribute.String(AttrHand, hand)
}

// ManifestPath returns an attribute for the manifest source path or URI.
func ManifestPath(path string) attribute.KeyValue {
	return attribute.String(AttrManifestPath, path)
}

// ManifestHash returns an attribute for the manifest content hash used as a cache key.
func ManifestHash(hash string) attribute.KeyValue {
	return attribute.String(AttrManifestHash, hash)
}

// CacheHit returns an attribute indicating whether the alias/binding cache served the request.
func CacheHit(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// BindingKind returns an attribute for a custom binding's evaluator kind.
func BindingKind(kind string) attribute.KeyValue {
	return attribute.String(AttrBindingKind, kind)
}

// StartSessionSpan starts a span for a session-level operation (frame/sync boundary).
func StartSessionSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, name, trace.WithAttributes(attrs...))
}

// StartManifestSpan starts a span for an action-manifest loader operation.
func StartManifestSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return StartSpan(ctx, "manifest."+operation, trace.WithAttributes(attrs...))
}

// StartBindingSpan starts a span for a custom binding evaluation.
func StartBindingSpan(ctx context.Context, kind string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := append([]attribute.KeyValue{BindingKind(kind)}, attrs...)
	return StartSpan(ctx, SpanBindingEval, trace.WithAttributes(allAttrs...))
}

// StartPoseSpan starts a span for a pose resolution operation.
func StartPoseSpan(ctx context.Context, deviceIndex uint32, origin string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := append([]attribute.KeyValue{DeviceIndex(deviceIndex), attribute.String(AttrOrigin, origin)}, attrs...)
	return StartSpan(ctx, SpanPoseResolve, trace.WithAttributes(allAttrs...))
}
