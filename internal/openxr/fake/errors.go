package fake

import "errors"

var (
	errNotFakeActionSet = errors.New("fake: not a *fake.ActionSet")
	errNotFakeAction    = errors.New("fake: not a *fake.Action")
	errNotFakeSpace     = errors.New("fake: not a *fake.Space")
	errNotAttached      = errors.New("fake: action sets not attached to session")
)
