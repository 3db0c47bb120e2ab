package aliasstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/aliasstore"
)

func newStore(t *testing.T) *aliasstore.Store {
	t.Helper()
	s, err := aliasstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	manifest := []byte(`{"action_sets":[]}`)
	entry := aliasstore.Entry{
		Aliases: map[string]string{"xrz-aaaa": "/actions/main/in/really_long_path_name"},
		Bindings: []aliasstore.CachedBinding{
			{Action: "/actions/main/in/trigger", Path: "/user/hand/left/input/trigger/click", Mode: "plain"},
		},
	}

	require.NoError(t, s.Put(ctx, manifest, "/interaction_profiles/valve/index_controller", entry))

	got, ok, err := s.Get(ctx, manifest, "/interaction_profiles/valve/index_controller")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestStore_GetMissReportsNotFoundWithoutError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	_, ok, err := s.Get(ctx, []byte("manifest"), "/interaction_profiles/htc/vive_controller")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_DistinctProfilesDoNotCollide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStore(t)

	manifest := []byte("same-manifest-bytes")
	a := aliasstore.Entry{Aliases: map[string]string{"a": "1"}}
	b := aliasstore.Entry{Aliases: map[string]string{"b": "2"}}

	require.NoError(t, s.Put(ctx, manifest, "/interaction_profiles/a", a))
	require.NoError(t, s.Put(ctx, manifest, "/interaction_profiles/b", b))

	got, ok, err := s.Get(ctx, manifest, "/interaction_profiles/a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok, err = s.Get(ctx, manifest, "/interaction_profiles/b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b, got)
}

func TestStore_PutBestEffortNeverPanics(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	require.NoError(t, s.Close())

	assert.NotPanics(t, func() {
		s.PutBestEffort(context.Background(), []byte("m"), "/interaction_profiles/x", aliasstore.Entry{})
	})
}
