package fake

import "github.com/Supreeeme/xrizer/internal/openxr"

// ActionSet is a fake openxr.ActionSet.
type ActionSet struct {
	name          string
	localizedName string
	priority      uint32
	actions       []*Action
}

func (s *ActionSet) Name() string { return s.name }

// Actions returns every action created under this set, for test
// assertions.
func (s *ActionSet) Actions() []*Action {
	return append([]*Action(nil), s.actions...)
}

var _ openxr.ActionSet = (*ActionSet)(nil)
