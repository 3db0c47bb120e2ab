package session

import "context"

// Restarter recreates the OpenXR instance/session pair backing a Data,
// per spec §4.5 step 6: "If legacy actions are already attached for
// this session, restart the session first and replay the load in
// post_session_restart." The actual teardown/recreate of the runtime
// session is owned by the out-of-scope OpenXR runtime binding; Data
// only needs the fresh Instance/Session pair back.
type Restarter interface {
	Restart(ctx context.Context) (Instance, error)
}
