package handle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AllocGet(t *testing.T) {
	t.Parallel()

	tbl := NewTable[string]()
	h := tbl.Alloc("/actions/main/in/teleport")

	require.NotZero(t, h)
	v, ok := tbl.Get(h)
	require.True(t, ok)
	assert.Equal(t, "/actions/main/in/teleport", v)
}

func TestTable_InvalidHandleIsZero(t *testing.T) {
	t.Parallel()

	tbl := NewTable[string]()
	_, ok := tbl.Get(0)
	assert.False(t, ok)
}

func TestTable_FreeThenStaleHandleRejected(t *testing.T) {
	t.Parallel()

	tbl := NewTable[string]()
	h := tbl.Alloc("a")

	require.True(t, tbl.Free(h))

	_, ok := tbl.Get(h)
	assert.False(t, ok, "freed handle must not resolve")

	h2 := tbl.Alloc("b")
	_, oldOk := tbl.Get(h)
	assert.False(t, oldOk, "old handle must not alias the reused slot")

	v2, ok2 := tbl.Get(h2)
	require.True(t, ok2)
	assert.Equal(t, "b", v2)
}

func TestTable_SetOverwritesValue(t *testing.T) {
	t.Parallel()

	tbl := NewTable[int]()
	h := tbl.Alloc(1)

	require.True(t, tbl.Set(h, 2))
	v, ok := tbl.Get(h)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTable_SetOnFreedHandleFails(t *testing.T) {
	t.Parallel()

	tbl := NewTable[int]()
	h := tbl.Alloc(1)
	require.True(t, tbl.Free(h))

	assert.False(t, tbl.Set(h, 99))
}

func TestTable_LenTracksOccupancy(t *testing.T) {
	t.Parallel()

	tbl := NewTable[int]()
	a := tbl.Alloc(1)
	tbl.Alloc(2)
	assert.Equal(t, 2, tbl.Len())

	tbl.Free(a)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_RangeVisitsOccupiedOnly(t *testing.T) {
	t.Parallel()

	tbl := NewTable[string]()
	a := tbl.Alloc("a")
	tbl.Alloc("b")
	tbl.Free(a)

	seen := make(map[string]bool)
	tbl.Range(func(h uint64, v string) {
		seen[v] = true
	})

	assert.False(t, seen["a"])
	assert.True(t, seen["b"])
}

func TestTable_ConcurrentAllocUniqueHandles(t *testing.T) {
	t.Parallel()

	tbl := NewTable[int]()
	const n = 200

	handles := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i] = tbl.Alloc(i)
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, h := range handles {
		require.False(t, seen[h], "duplicate handle allocated concurrently")
		seen[h] = true
	}
}
