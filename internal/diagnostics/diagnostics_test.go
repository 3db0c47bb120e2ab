package diagnostics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/devices"
	"github.com/Supreeeme/xrizer/internal/events"
	"github.com/Supreeeme/xrizer/internal/legacy"
	"github.com/Supreeeme/xrizer/internal/manifest"
	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// stubSource is a minimal Source for tests; internal/session.Data
// satisfies the same interface in the real binary.
type stubSource struct {
	devs     *devices.Table
	loaded   *manifest.LoadedActions
	legacy   *legacy.Actions
	legacySt *legacy.State
	attached bool
	evs      *events.Queue
}

func newStubSource() *stubSource {
	return &stubSource{devs: devices.NewTable(), evs: events.NewQueue()}
}

func (s *stubSource) Devices() *devices.Table { return s.devs }
func (s *stubSource) Loaded() (*manifest.LoadedActions, bool) {
	return s.loaded, s.loaded != nil
}
func (s *stubSource) LegacyActions() (*legacy.Actions, *legacy.State, bool) {
	return s.legacy, s.legacySt, s.attached
}
func (s *stubSource) Events() *events.Queue { return s.evs }

var _ Source = (*stubSource)(nil)

func TestDevicesEndpoint_ReportsHMDAndControllerProfile(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	left := src.devs.Controller(devices.HandLeft)
	left.SetConnected(true)
	left.SetProfile(profiles.Knuckles, profiles.Knuckles.Path)

	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	w := httptest.NewRecorder()
	newRouter(src).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows []deviceJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 3, "HMD + left + right controller slots")

	assert.Equal(t, "hmd", rows[0].Class)
	assert.True(t, rows[0].Connected)

	assert.Equal(t, "controller", rows[1].Class)
	assert.Equal(t, "left", rows[1].Hand)
	assert.True(t, rows[1].Connected)
	assert.Equal(t, profiles.Knuckles.Path, rows[1].ProfilePath)

	assert.False(t, rows[2].Connected, "right controller was never connected")
}

func TestActionsEndpoint_ReportsLegacyWhenNoManifestLoaded(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	src.attached = true
	src.legacySt = legacy.NewState()

	w := httptest.NewRecorder()
	newRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp actionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "legacy", resp.Source)
	assert.Len(t, resp.Actions, len(legacyActionLabels))
}

func TestActionsEndpoint_ReportsManifestWhenLoaded(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	src.loaded = &manifest.LoadedActions{
		ActionTypes: map[string]string{
			"/actions/main/in/a":     "boolean",
			"/actions/main/in/grip":  "vector1",
		},
	}

	w := httptest.NewRecorder()
	newRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/actions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp actionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "manifest", resp.Source)
	assert.Len(t, resp.Actions, 2)
}

func TestEventsEndpoint_DoesNotDrainQueue(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	src.evs.Push(ovr.Event{Type: ovr.EventButtonPress, TrackedDeviceIndex: 1, Controller: ovr.EventDataController{Button: 7}})

	w := httptest.NewRecorder()
	newRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rows []eventJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "button_press", rows[0].Type)
	assert.Equal(t, uint32(7), rows[0].Button)

	assert.Equal(t, 1, src.evs.Len(), "the diagnostics server must never drain the live event queue")
}

func TestDumpEndpoint_RendersPlainTextTables(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	src.devs.HMD() // sanity: default table always has an HMD

	w := httptest.NewRecorder()
	newRouter(src).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dump", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "== tracked devices ==")
	assert.Contains(t, body, "== actions ==")
	assert.Contains(t, body, "== events (queued) ==")
}

func TestServer_StartStopsOnContextCancel(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	srv := New("127.0.0.1:0", src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestClassLabelAndRoleLabel(t *testing.T) {
	t.Parallel()
	src := newStubSource()
	hmd := src.devs.HMD()
	assert.Equal(t, "hmd", classLabel(hmd))

	left := src.devs.Controller(devices.HandLeft)
	assert.Equal(t, "controller", classLabel(left))
	assert.Equal(t, "left_hand", roleLabel(left))
}

func TestEventTypeLabel_UnknownFallsBackToNumeric(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "button_press", eventTypeLabel(ovr.EventButtonPress))
	assert.Contains(t, eventTypeLabel(ovr.EventType(9999)), "unknown")
}
