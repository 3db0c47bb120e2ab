package logger

import (
	"context"
	"time"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

// logContextKey is the key for LogContext in context.Context
var logContextKey = contextKey{}

// LogContext holds session-scoped logging context
type LogContext struct {
	TraceID     string    // OpenTelemetry trace ID
	SpanID      string    // OpenTelemetry span ID
	Procedure   string    // OpenVR entry point name (UpdateActionState, GetPoseActionData, etc.)
	SessionID   string    // xrizer session identifier
	FrameSeq    uint64    // current frame sequence number
	SyncSeq     uint64    // current action-set sync sequence number
	DeviceIndex uint32    // tracked device index, when scoped to a single device
	HasDevice   bool      // DeviceIndex is meaningful (device 0 is a valid index)
	StartTime   time.Time // for duration calculation
}

// WithContext returns a new context with the given LogContext
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from context, or nil if not present
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext creates a new LogContext for a session
func NewLogContext(sessionID string) *LogContext {
	return &LogContext{
		SessionID: sessionID,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	return &LogContext{
		TraceID:     lc.TraceID,
		SpanID:      lc.SpanID,
		Procedure:   lc.Procedure,
		SessionID:   lc.SessionID,
		FrameSeq:    lc.FrameSeq,
		SyncSeq:     lc.SyncSeq,
		DeviceIndex: lc.DeviceIndex,
		HasDevice:   lc.HasDevice,
		StartTime:   lc.StartTime,
	}
}

// WithProcedure returns a copy with the OpenVR entry point name set
func (lc *LogContext) WithProcedure(procedure string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.Procedure = procedure
	}
	return clone
}

// WithFrame returns a copy with the frame and sync sequence numbers set
func (lc *LogContext) WithFrame(frameSeq, syncSeq uint64) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.FrameSeq = frameSeq
		clone.SyncSeq = syncSeq
	}
	return clone
}

// WithDevice returns a copy scoped to a single tracked device index
func (lc *LogContext) WithDevice(deviceIndex uint32) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.DeviceIndex = deviceIndex
		clone.HasDevice = true
	}
	return clone
}

// WithTrace returns a copy with trace info set
func (lc *LogContext) WithTrace(traceID, spanID string) *LogContext {
	clone := lc.Clone()
	if clone != nil {
		clone.TraceID = traceID
		clone.SpanID = spanID
	}
	return clone
}

// DurationMs returns the duration since StartTime in milliseconds
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return float64(time.Since(lc.StartTime).Microseconds()) / 1000.0
}
