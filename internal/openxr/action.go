package openxr

import "context"

// ActionSet is a created, opaque OpenXR action set.
type ActionSet interface {
	// Name returns the action set's creation-time name.
	Name() string
}

// Action is a created, opaque OpenXR action. Read accessors take the
// subaction path (NullPath for unrestricted) and must only be called
// after the owning action set's session has synced at least once.
type Action interface {
	// Kind returns the action type it was created with.
	Kind() ActionType

	// Bool reads a boolean action's current state.
	Bool(ctx context.Context, subactionPath Path) (ActionStateBool, error)

	// Float reads a float (vector1) action's current state.
	Float(ctx context.Context, subactionPath Path) (ActionStateFloat, error)

	// Vector2f reads a vector2 action's current state.
	Vector2f(ctx context.Context, subactionPath Path) (ActionStateVector2f, error)

	// CreateSpace creates a pose-action space anchored to this action,
	// restricted to subactionPath.
	CreateSpace(ctx context.Context, subactionPath Path) (Space, error)
}
