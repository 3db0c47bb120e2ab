package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements for log aggregation and querying.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Session & Frame
	// ========================================================================
	KeyProcedure  = "procedure"  // OpenVR entry point name: UpdateActionState, GetPoseActionData, etc.
	KeySessionID  = "session_id" // xrizer session identifier
	KeyFrameSeq   = "frame_seq"  // Frame sequence number
	KeySyncSeq    = "sync_seq"   // Action-set sync sequence number
	KeyStatus     = "status"     // Operation status code (ovr.ErrorCode)
	KeyStatusMsg  = "status_msg" // Human-readable status message

	// ========================================================================
	// Handles & Actions
	// ========================================================================
	KeyHandleKind  = "handle_kind"  // Handle kind: action_set, action, input_source
	KeyHandleValue = "handle_value" // Raw handle value (hex)
	KeyActionPath  = "action_path"  // Declared action path: /actions/main/in/trigger
	KeyActionKind  = "action_kind"  // boolean, vector1, vector2, pose, skeleton, vibration
	KeyActionSet   = "action_set"   // Declared action-set path

	// ========================================================================
	// Devices & Profiles
	// ========================================================================
	KeyDeviceIndex = "device_index" // Tracked device index
	KeyDeviceClass = "device_class" // hmd, controller, generic_tracker
	KeyHand        = "hand"         // left, right, any
	KeyProfilePath = "profile_path" // Interaction profile path
	KeyOrigin      = "origin"       // Tracking origin: seated, standing, raw

	// ========================================================================
	// Manifest Loader & Alias/Binding Cache
	// ========================================================================
	KeyManifestPath  = "manifest_path"  // Manifest source path or URI
	KeyManifestHash  = "manifest_hash"  // blake2b-256 of manifest bytes, used as cache key
	KeyBindingURL    = "binding_url"    // default_bindings[].binding_url being loaded
	KeyBindingsCount = "bindings_count" // Number of suggested bindings produced for a profile
	KeyCacheHit      = "cache_hit"      // Alias/binding cache hit indicator

	// ========================================================================
	// Custom Bindings
	// ========================================================================
	KeyBindingKind = "binding_kind" // dpad, grab, toggle, threshold
	KeyDirection   = "direction"    // dpad direction: north, east, south, west, center

	// ========================================================================
	// Events
	// ========================================================================
	KeyEventType   = "event_type"   // VREvent_t equivalent event type
	KeyQueueDepth  = "queue_depth"  // Pending event queue depth

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // Numeric error code
	KeySource     = "source"      // Data source: manifest, legacy, cache
	KeyOperation  = "operation"   // Sub-operation type for complex operations
	KeyAttempt    = "attempt"     // Retry attempt number
	KeyMaxRetries = "max_retries" // Maximum retry attempts

	// ========================================================================
	// Remote Manifest Retrieval
	// ========================================================================
	KeyBucket = "bucket" // S3 bucket name for s3:// manifest URIs
	KeyRegion = "region" // S3 region
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// ----------------------------------------------------------------------------
// Distributed Tracing
// ----------------------------------------------------------------------------

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// ----------------------------------------------------------------------------
// Session & Frame
// ----------------------------------------------------------------------------

// Procedure returns a slog.Attr for the OpenVR entry point name
func Procedure(name string) slog.Attr {
	return slog.String(KeyProcedure, name)
}

// SessionID returns a slog.Attr for the xrizer session identifier
func SessionID(id string) slog.Attr {
	return slog.String(KeySessionID, id)
}

// FrameSeq returns a slog.Attr for the current frame sequence number
func FrameSeq(seq uint64) slog.Attr {
	return slog.Uint64(KeyFrameSeq, seq)
}

// SyncSeq returns a slog.Attr for the current sync sequence number
func SyncSeq(seq uint64) slog.Attr {
	return slog.Uint64(KeySyncSeq, seq)
}

// Status returns a slog.Attr for operation status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// StatusMsg returns a slog.Attr for human-readable status message
func StatusMsg(msg string) slog.Attr {
	return slog.String(KeyStatusMsg, msg)
}

// ----------------------------------------------------------------------------
// Handles & Actions
// ----------------------------------------------------------------------------

// Handle returns slog.Attrs for a handle's kind and raw value
func Handle(kind string, value uint64) []slog.Attr {
	return []slog.Attr{
		slog.String(KeyHandleKind, kind),
		slog.String(KeyHandleValue, fmt.Sprintf("%#x", value)),
	}
}

// ActionPath returns a slog.Attr for an action's declared path
func ActionPath(path string) slog.Attr {
	return slog.String(KeyActionPath, path)
}

// ActionKind returns a slog.Attr for an action's kind
func ActionKind(kind string) slog.Attr {
	return slog.String(KeyActionKind, kind)
}

// ActionSet returns a slog.Attr for a declared action-set path
func ActionSet(path string) slog.Attr {
	return slog.String(KeyActionSet, path)
}

// ----------------------------------------------------------------------------
// Devices & Profiles
// ----------------------------------------------------------------------------

// DeviceIndex returns a slog.Attr for a tracked device index
func DeviceIndex(index uint32) slog.Attr {
	return slog.Any(KeyDeviceIndex, index)
}

// DeviceClass returns a slog.Attr for a tracked device class
func DeviceClass(class string) slog.Attr {
	return slog.String(KeyDeviceClass, class)
}

// Hand returns a slog.Attr for which hand a device/action applies to
func Hand(hand string) slog.Attr {
	return slog.String(KeyHand, hand)
}

// ProfilePath returns a slog.Attr for an interaction profile path
func ProfilePath(path string) slog.Attr {
	return slog.String(KeyProfilePath, path)
}

// Origin returns a slog.Attr for the tracking origin
func Origin(origin string) slog.Attr {
	return slog.String(KeyOrigin, origin)
}

// ----------------------------------------------------------------------------
// Manifest Loader & Alias/Binding Cache
// ----------------------------------------------------------------------------

// ManifestPath returns a slog.Attr for the manifest source path or URI
func ManifestPath(path string) slog.Attr {
	return slog.String(KeyManifestPath, path)
}

// ManifestHash returns a slog.Attr for the manifest content hash
func ManifestHash(hash string) slog.Attr {
	return slog.String(KeyManifestHash, hash)
}

// BindingURL returns a slog.Attr for a default_bindings binding_url
func BindingURL(url string) slog.Attr {
	return slog.String(KeyBindingURL, url)
}

// BindingsCount returns a slog.Attr for the number of suggested bindings produced
func BindingsCount(n int) slog.Attr {
	return slog.Int(KeyBindingsCount, n)
}

// CacheHit returns a slog.Attr for alias/binding cache hit indicator
func CacheHit(hit bool) slog.Attr {
	return slog.Bool(KeyCacheHit, hit)
}

// ----------------------------------------------------------------------------
// Custom Bindings
// ----------------------------------------------------------------------------

// BindingKind returns a slog.Attr for a custom binding's evaluator kind
func BindingKind(kind string) slog.Attr {
	return slog.String(KeyBindingKind, kind)
}

// Direction returns a slog.Attr for a dpad direction
func Direction(dir string) slog.Attr {
	return slog.String(KeyDirection, dir)
}

// ----------------------------------------------------------------------------
// Events
// ----------------------------------------------------------------------------

// EventType returns a slog.Attr for a VREvent_t equivalent event type
func EventType(t int) slog.Attr {
	return slog.Int(KeyEventType, t)
}

// QueueDepth returns a slog.Attr for pending event queue depth
func QueueDepth(n int) slog.Attr {
	return slog.Int(KeyQueueDepth, n)
}

// ----------------------------------------------------------------------------
// Operation Metadata
// ----------------------------------------------------------------------------

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for numeric error code
func ErrorCode(code int) slog.Attr {
	return slog.Int(KeyErrorCode, code)
}

// Source returns a slog.Attr for data source
func Source(src string) slog.Attr {
	return slog.String(KeySource, src)
}

// Operation returns a slog.Attr for sub-operation type
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Attempt returns a slog.Attr for retry attempt number
func Attempt(n int) slog.Attr {
	return slog.Int(KeyAttempt, n)
}

// MaxRetries returns a slog.Attr for maximum retry attempts
func MaxRetries(n int) slog.Attr {
	return slog.Int(KeyMaxRetries, n)
}

// ----------------------------------------------------------------------------
// Remote Manifest Retrieval
// ----------------------------------------------------------------------------

// Bucket returns a slog.Attr for an S3 bucket name
func Bucket(name string) slog.Attr {
	return slog.String(KeyBucket, name)
}

// Region returns a slog.Attr for an S3 region
func Region(r string) slog.Attr {
	return slog.String(KeyRegion, r)
}
