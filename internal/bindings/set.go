package bindings

import (
	"context"
	"sync"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

type cacheKey struct {
	index         int
	subactionPath openxr.Path
}

type cacheEntry struct {
	state *openxr.ActionStateBool
	err   error
}

// Set holds every custom binding evaluator for one manifest load,
// memoizing each evaluator's result per (evaluator, subaction path)
// between Advance calls so that an action bound by more than one
// evaluator reference only invokes each evaluator once per sync, per
// spec §4.6 "Ordering".
type Set struct {
	mu         sync.Mutex
	evaluators []Evaluator
	cache      map[cacheKey]cacheEntry
}

// NewSet returns an empty evaluator set.
func NewSet() *Set {
	return &Set{cache: make(map[cacheKey]cacheEntry)}
}

// Add registers evaluator and returns its index for later lookups via
// StateAt.
func (s *Set) Add(evaluator Evaluator) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluators = append(s.evaluators, evaluator)
	return len(s.evaluators) - 1
}

// Advance clears the per-sync cache, called once after every
// xrSyncActions.
func (s *Set) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[cacheKey]cacheEntry)
}

// StateAt returns evaluator index's state for subactionPath, computing
// and caching it on first access this sync.
func (s *Set) StateAt(ctx context.Context, index int, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	key := cacheKey{index, subactionPath}

	s.mu.Lock()
	if e, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return e.state, e.err
	}
	evaluator := s.evaluators[index]
	s.mu.Unlock()

	state, err := evaluator.State(ctx, subactionPath)

	s.mu.Lock()
	s.cache[key] = cacheEntry{state, err}
	s.mu.Unlock()

	return state, err
}
