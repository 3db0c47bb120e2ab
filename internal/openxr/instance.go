package openxr

import "context"

// Instance is the subset of an XrInstance the core needs: extension
// introspection, path interning, and action-set/action creation.
type Instance interface {
	// ExtensionEnabled reports whether the named OpenXR extension
	// (e.g. "XR_EXT_hand_tracking", "XR_MNDX_force_feedback_curl") was
	// enabled when the instance was created.
	ExtensionEnabled(name string) bool

	// StringToPath interns path (e.g. "/user/hand/left") and returns its
	// Path handle, creating it on first use.
	StringToPath(ctx context.Context, path string) (Path, error)

	// CreateActionSet creates a new action set with the given name,
	// localized name, and priority.
	CreateActionSet(ctx context.Context, name, localizedName string, priority uint32) (ActionSet, error)

	// CreateAction creates a new action of the given kind within set,
	// restricted to the given subaction paths (empty means
	// unrestricted).
	CreateAction(ctx context.Context, set ActionSet, name, localizedName string, kind ActionType, subactionPaths []Path) (Action, error)

	// SuggestBindings submits one xrSuggestInteractionProfileBindings
	// call for profilePath, binding each Action to its suggested Path.
	SuggestBindings(ctx context.Context, profilePath Path, bindings []Binding) error

	// CreateHandTracker creates an XR_EXT_hand_tracking hand tracker
	// restricted to hand (/user/hand/left or /user/hand/right). Callers
	// must check ExtensionEnabled("XR_EXT_hand_tracking") first.
	CreateHandTracker(ctx context.Context, hand Path) (HandTracker, error)
}

// Binding is one (action, path) suggestion passed to SuggestBindings.
type Binding struct {
	Action Action
	Path   Path
}
