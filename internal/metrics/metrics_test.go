package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistry_Disabled(t *testing.T) {
	InitRegistry(false)
	defer InitRegistry(false)

	assert.False(t, IsEnabled())
	assert.Nil(t, GetRegistry())
	assert.Nil(t, NewSessionMetrics())
	assert.Nil(t, NewManifestMetrics())
	assert.Nil(t, NewBindingMetrics())
}

func TestInitRegistry_Enabled(t *testing.T) {
	InitRegistry(true)
	defer InitRegistry(false)

	require.True(t, IsEnabled())
	require.NotNil(t, GetRegistry())
}

func TestSessionMetrics_NilSafe(t *testing.T) {
	InitRegistry(false)
	defer InitRegistry(false)

	m := NewSessionMetrics()
	require.NotPanics(t, func() {
		m.RecordFrame(time.Millisecond)
		m.RecordSync("/actions/main/in", time.Millisecond)
		m.RecordPoseResolve(0, "standing", time.Millisecond)
		m.SetEventQueueDepth(3)
		m.RecordSessionRestart()
	})
}

func TestSessionMetrics_RecordsAgainstRegistry(t *testing.T) {
	InitRegistry(true)
	defer InitRegistry(false)

	m := NewSessionMetrics()
	require.NotNil(t, m)

	require.NotPanics(t, func() {
		m.RecordFrame(2 * time.Millisecond)
		m.RecordSync("/actions/main/in", time.Millisecond)
		m.RecordPoseResolve(1, "seated", 500*time.Microsecond)
		m.SetEventQueueDepth(5)
		m.RecordSessionRestart()
	})
}

func TestManifestMetrics_NilSafe(t *testing.T) {
	InitRegistry(false)
	defer InitRegistry(false)

	m := NewManifestMetrics()
	require.NotPanics(t, func() {
		m.RecordLoad(time.Millisecond, true)
		m.RecordFetch(time.Millisecond, false)
		m.RecordBindingsProduced("/interaction_profiles/valve/index_controller", 12)
		m.RecordCacheLookup(true)
	})
}

func TestManifestMetrics_RecordsAgainstRegistry(t *testing.T) {
	InitRegistry(true)
	defer InitRegistry(false)

	m := NewManifestMetrics()
	require.NotNil(t, m)

	require.NotPanics(t, func() {
		m.RecordLoad(10*time.Millisecond, true)
		m.RecordFetch(20*time.Millisecond, false)
		m.RecordBindingsProduced("/interaction_profiles/htc/vive_controller", 8)
		m.RecordCacheLookup(false)
	})
}

func TestBindingMetrics_NilSafe(t *testing.T) {
	InitRegistry(false)
	defer InitRegistry(false)

	m := NewBindingMetrics()
	require.NotPanics(t, func() {
		m.RecordEvaluation("dpad")
		m.RecordTransition("grab")
	})
}

func TestBindingMetrics_RecordsAgainstRegistry(t *testing.T) {
	InitRegistry(true)
	defer InitRegistry(false)

	m := NewBindingMetrics()
	require.NotNil(t, m)

	require.NotPanics(t, func() {
		m.RecordEvaluation("threshold")
		m.RecordTransition("toggle")
	})
}
