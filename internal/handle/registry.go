package handle

import (
	"strings"
	"sync"

	"github.com/Supreeeme/xrizer/internal/ovr"
)

// Registry interns the three handle spaces by lowercase path: identical
// paths return identical handles regardless of call order or whether the
// handle was first minted by an explicit host query or by manifest load.
type Registry struct {
	actionSets   *Table[string]
	actions      *Table[string]
	inputSources *Table[string]

	mu              sync.Mutex // guards the three intern maps below
	actionSetByPath map[string]ovr.ActionSetHandle
	actionByPath    map[string]ovr.ActionHandle
	sourceByPath    map[string]ovr.InputSourceHandle
}

// NewRegistry returns a Registry with the two fixed input sources
// (/user/hand/left, /user/hand/right) pre-created, per spec.
func NewRegistry() *Registry {
	r := &Registry{
		actionSets:      NewTable[string](),
		actions:         NewTable[string](),
		inputSources:    NewTable[string](),
		actionSetByPath: make(map[string]ovr.ActionSetHandle),
		actionByPath:    make(map[string]ovr.ActionHandle),
		sourceByPath:    make(map[string]ovr.InputSourceHandle),
	}
	r.internInputSource("/user/hand/left")
	r.internInputSource("/user/hand/right")
	return r
}

func normalize(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}

// ActionSetHandleForPath returns the handle for path, allocating one on
// first use.
func (r *Registry) ActionSetHandleForPath(path string) ovr.ActionSetHandle {
	key := normalize(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.actionSetByPath[key]; ok {
		return h
	}
	h := ovr.ActionSetHandle(r.actionSets.Alloc(path))
	r.actionSetByPath[key] = h
	return h
}

// ActionHandleForPath returns the handle for path, allocating one on
// first use.
func (r *Registry) ActionHandleForPath(path string) ovr.ActionHandle {
	key := normalize(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.actionByPath[key]; ok {
		return h
	}
	h := ovr.ActionHandle(r.actions.Alloc(path))
	r.actionByPath[key] = h
	return h
}

// InputSourceHandleForPath returns the handle for path, interning it on
// first use (spec: "further source strings are interned on first
// GetInputSourceHandle").
func (r *Registry) InputSourceHandleForPath(path string) ovr.InputSourceHandle {
	key := normalize(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.internInputSourceLocked(key, path)
}

// internInputSource is used during construction, before concurrent
// access is possible.
func (r *Registry) internInputSource(path string) ovr.InputSourceHandle {
	return r.internInputSourceLocked(normalize(path), path)
}

func (r *Registry) internInputSourceLocked(key, path string) ovr.InputSourceHandle {
	if h, ok := r.sourceByPath[key]; ok {
		return h
	}
	h := ovr.InputSourceHandle(r.inputSources.Alloc(path))
	r.sourceByPath[key] = h
	return h
}

// LookupActionSetPath resolves h back to the path it was created from.
func (r *Registry) LookupActionSetPath(h ovr.ActionSetHandle) (string, bool) {
	return r.actionSets.Get(uint64(h))
}

// LookupActionPath resolves h back to the path it was created from.
func (r *Registry) LookupActionPath(h ovr.ActionHandle) (string, bool) {
	return r.actions.Get(uint64(h))
}

// LookupInputSourcePath resolves h back to the path it was created from.
func (r *Registry) LookupInputSourcePath(h ovr.InputSourceHandle) (string, bool) {
	return r.inputSources.Get(uint64(h))
}

// ValidateActionSet returns an *ovr.Error for op if h is not a live
// action-set handle.
func (r *Registry) ValidateActionSet(op string, h ovr.ActionSetHandle) *ovr.Error {
	if _, ok := r.LookupActionSetPath(h); !ok {
		return ovr.NewInvalidHandle(op)
	}
	return nil
}

// ValidateAction returns an *ovr.Error for op if h is not a live action
// handle.
func (r *Registry) ValidateAction(op string, h ovr.ActionHandle) *ovr.Error {
	if _, ok := r.LookupActionPath(h); !ok {
		return ovr.NewInvalidHandle(op)
	}
	return nil
}

// ValidateInputSource returns an *ovr.Error for op if h is not a live
// input-source handle.
func (r *Registry) ValidateInputSource(op string, h ovr.InputSourceHandle) *ovr.Error {
	if _, ok := r.LookupInputSourcePath(h); !ok {
		return ovr.NewInvalidHandle(op)
	}
	return nil
}
