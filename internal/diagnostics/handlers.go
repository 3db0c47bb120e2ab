package diagnostics

import (
	"encoding/json"
	"net/http"

	"github.com/Supreeeme/xrizer/internal/devices"
)

type handlers struct {
	src Source
}

// deviceJSON is one row of the /devices response.
type deviceJSON struct {
	Index       uint32 `json:"index"`
	Class       string `json:"class"`
	Role        string `json:"role,omitempty"`
	Hand        string `json:"hand,omitempty"`
	Connected   bool   `json:"connected"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// actionJSON is one row of the /actions response.
type actionJSON struct {
	Path string `json:"path"`
	Type string `json:"type,omitempty"`
}

// actionsResponse distinguishes a manifest-loaded action set from the
// legacy fallback set, since only one of the two is ever active.
type actionsResponse struct {
	Source  string       `json:"source"` // "manifest" or "legacy"
	Actions []actionJSON `json:"actions"`
}

// eventJSON is one row of the /events response.
type eventJSON struct {
	Type               string  `json:"type"`
	TrackedDeviceIndex uint32  `json:"tracked_device_index"`
	EventAgeSeconds    float32 `json:"event_age_seconds"`
	Button             uint32  `json:"button,omitempty"`
}

func deviceRows(src Source) []deviceJSON {
	var rows []deviceJSON
	src.Devices().Range(func(d *devices.Device) {
		row := deviceJSON{
			Index:     d.Index(),
			Class:     classLabel(d),
			Role:      roleLabel(d),
			Hand:      string(d.Hand()),
			Connected: d.Connected(),
		}
		if p, ok := d.Profile(); ok {
			row.ProfilePath = p.Path
		}
		rows = append(rows, row)
	})
	return rows
}

func (h *handlers) devices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, deviceRows(h.src))
}

func (h *handlers) actions(w http.ResponseWriter, r *http.Request) {
	resp := buildActionsResponse(h.src)
	writeJSON(w, resp)
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	var rows []eventJSON
	for _, ev := range h.src.Events().Snapshot() {
		rows = append(rows, eventJSON{
			Type:               eventTypeLabel(ev.Type),
			TrackedDeviceIndex: ev.TrackedDeviceIndex,
			EventAgeSeconds:    ev.EventAgeSeconds,
			Button:             ev.Controller.Button,
		})
	}
	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
