package fake

import "github.com/Supreeeme/xrizer/internal/openxr"

// Space is a fake openxr.Space. A reference space is identified by its
// ReferenceSpaceType; an action space is identified by its owning
// Action and subaction path.
type Space struct {
	kind          openxr.SpaceKind
	referenceKind openxr.ReferenceSpaceType
	owner         *Action
	subactionPath openxr.Path
}

func (s *Space) Kind() openxr.SpaceKind { return s.kind }

var _ openxr.Space = (*Space)(nil)
