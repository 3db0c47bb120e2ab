package bindings

import (
	"context"
	"sync"

	"github.com/Supreeeme/xrizer/internal/openxr"
)

// Toggle flips a latched boolean on every rising edge of a boolean
// source, per spec §4.6.
type Toggle struct {
	Source openxr.Action // bool

	mu    sync.Mutex
	state bool
}

// NewToggle returns a Toggle evaluator over source.
func NewToggle(source openxr.Action) *Toggle {
	return &Toggle{Source: source}
}

func (t *Toggle) State(ctx context.Context, subactionPath openxr.Path) (*openxr.ActionStateBool, error) {
	source, err := t.Source.Bool(ctx, subactionPath)
	if err != nil {
		return nil, err
	}
	if !source.IsActive {
		return nil, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.state
	current := prev
	if source.Changed && source.CurrentState {
		current = !prev
	}
	t.state = current

	return &openxr.ActionStateBool{
		IsActive:       true,
		CurrentState:   current,
		Changed:        current != prev,
		LastChangeTime: source.LastChangeTime,
	}, nil
}
