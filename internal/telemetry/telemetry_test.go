package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "xrizer", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.ServiceVersion)
	assert.Equal(t, "localhost:4317", cfg.Endpoint)
	assert.True(t, cfg.Insecure)
	assert.Equal(t, 1.0, cfg.SampleRate)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Enabled = false

	shutdown, err := Init(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	err = shutdown(ctx)
	assert.NoError(t, err)

	assert.False(t, IsEnabled())
}

func TestTracerReturnsNoOp(t *testing.T) {
	tracer = nil
	enabled = false

	tr := Tracer()
	require.NotNil(t, tr)
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartSpan(ctx, "test.operation")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()
}

func TestSpanFromContext(t *testing.T) {
	ctx := context.Background()

	span := SpanFromContext(ctx)
	require.NotNil(t, span)
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		AddEvent(ctx, "test.event")
	})
}

func TestRecordError(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		RecordError(ctx, nil)
	})

	require.NotPanics(t, func() {
		RecordError(ctx, errors.New("test error"))
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Ok, "success")
	})

	require.NotPanics(t, func() {
		SetStatus(ctx, codes.Error, "failed")
	})
}

func TestSetAttributes(t *testing.T) {
	ctx := context.Background()

	require.NotPanics(t, func() {
		SetAttributes(ctx, ProfilePath("/interaction_profiles/valve/index_controller"))
	})
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()

	traceID := TraceID(ctx)
	assert.Equal(t, "", traceID)
}

func TestSpanID(t *testing.T) {
	ctx := context.Background()

	spanID := SpanID(ctx)
	assert.Equal(t, "", spanID)
}

func TestAttributeHelpers(t *testing.T) {
	t.Run("FrameSeq", func(t *testing.T) {
		attr := FrameSeq(42)
		assert.Equal(t, AttrFrameSeq, string(attr.Key))
		assert.Equal(t, int64(42), attr.Value.AsInt64())
	})

	t.Run("SyncSeq", func(t *testing.T) {
		attr := SyncSeq(7)
		assert.Equal(t, AttrSyncSeq, string(attr.Key))
		assert.Equal(t, int64(7), attr.Value.AsInt64())
	})

	t.Run("HandleValue", func(t *testing.T) {
		attrs := HandleValue("action", 0x0102030405060708)
		require.Len(t, attrs, 2)
		assert.Equal(t, AttrHandleKind, string(attrs[0].Key))
		assert.Equal(t, "action", attrs[0].Value.AsString())
		assert.Equal(t, AttrHandleValue, string(attrs[1].Key))
	})

	t.Run("ActionPath", func(t *testing.T) {
		attr := ActionPath("/actions/main/in/trigger")
		assert.Equal(t, AttrActionPath, string(attr.Key))
		assert.Equal(t, "/actions/main/in/trigger", attr.Value.AsString())
	})

	t.Run("ActionKind", func(t *testing.T) {
		attr := ActionKind("boolean")
		assert.Equal(t, AttrActionKind, string(attr.Key))
		assert.Equal(t, "boolean", attr.Value.AsString())
	})

	t.Run("DeviceIndex", func(t *testing.T) {
		attr := DeviceIndex(1)
		assert.Equal(t, AttrDeviceIndex, string(attr.Key))
		assert.Equal(t, int64(1), attr.Value.AsInt64())
	})

	t.Run("ProfilePath", func(t *testing.T) {
		attr := ProfilePath("/interaction_profiles/htc/vive_controller")
		assert.Equal(t, AttrProfilePath, string(attr.Key))
		assert.Equal(t, "/interaction_profiles/htc/vive_controller", attr.Value.AsString())
	})

	t.Run("Hand", func(t *testing.T) {
		attr := Hand("left")
		assert.Equal(t, AttrHand, string(attr.Key))
		assert.Equal(t, "left", attr.Value.AsString())
	})

	t.Run("ManifestPath", func(t *testing.T) {
		attr := ManifestPath("/tmp/actions.json")
		assert.Equal(t, AttrManifestPath, string(attr.Key))
		assert.Equal(t, "/tmp/actions.json", attr.Value.AsString())
	})

	t.Run("ManifestHash", func(t *testing.T) {
		attr := ManifestHash("deadbeef")
		assert.Equal(t, AttrManifestHash, string(attr.Key))
		assert.Equal(t, "deadbeef", attr.Value.AsString())
	})

	t.Run("CacheHit", func(t *testing.T) {
		attr := CacheHit(true)
		assert.Equal(t, AttrCacheHit, string(attr.Key))
		assert.True(t, attr.Value.AsBool())
	})

	t.Run("BindingKind", func(t *testing.T) {
		attr := BindingKind("dpad")
		assert.Equal(t, AttrBindingKind, string(attr.Key))
		assert.Equal(t, "dpad", attr.Value.AsString())
	})
}

func TestStartManifestSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartManifestSpan(ctx, "load", ManifestPath("/tmp/actions.json"))
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()
}

func TestStartBindingSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartBindingSpan(ctx, "grab", Hand("right"))
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()
}

func TestStartPoseSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartPoseSpan(ctx, 1, "standing")
	require.NotNil(t, newCtx)
	require.NotNil(t, span)
	span.End()
}
