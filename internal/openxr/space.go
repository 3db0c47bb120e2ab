package openxr

// Space is an opaque located-pose space: a reference space or a
// pose-action space. It carries no methods of its own; it is a handle
// passed back into Session.LocateSpace.
type Space interface {
	// Kind distinguishes a reference space from an action space, for
	// diagnostics and for the pose cache to decide whether a space needs
	// recreating when the underlying action is recreated.
	Kind() SpaceKind
}

// SpaceKind distinguishes the provenance of a Space.
type SpaceKind int

const (
	SpaceKindReference SpaceKind = iota
	SpaceKindAction
)
