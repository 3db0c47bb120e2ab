package diagnostics

// legacyActionLabels names legacy_actions.cpp's fixed action set
// fields (internal/legacy.Actions) in declaration order, since that
// struct has no name-keyed map the way a loaded manifest's actions do.
var legacyActionLabels = []string{
	"app_menu", "a", "trigger_click", "squeeze_click", "trigger",
	"squeeze", "main_xy", "main_xy_touch", "main_xy_click", "haptic",
}

// buildActionsResponse reports either the manifest-loaded action table
// or the legacy fallback set, whichever is currently active for the
// session: exactly one of the two is ever live.
func buildActionsResponse(src Source) actionsResponse {
	if loaded, ok := src.Loaded(); ok {
		resp := actionsResponse{Source: "manifest"}
		for path, kind := range loaded.ActionTypes {
			resp.Actions = append(resp.Actions, actionJSON{Path: path, Type: kind})
		}
		return resp
	}

	resp := actionsResponse{Source: "legacy"}
	if _, _, attached := src.LegacyActions(); attached {
		for _, name := range legacyActionLabels {
			resp.Actions = append(resp.Actions, actionJSON{Path: "/actions/legacy/in/" + name})
		}
	}
	return resp
}
