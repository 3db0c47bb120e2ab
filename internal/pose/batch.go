package pose

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// DeviceQuery is one device to resolve in a RefreshAll batch.
type DeviceQuery struct {
	Index        uint32
	IsController bool
	Connected    bool
}

// RefreshAll resolves and memoizes every device's pose for origin in
// parallel, bounded to min(len(devices), GOMAXPROCS) goroutines (spec
// SPEC_FULL.md §5). Each goroutine only ever touches its own device's
// cache slot through GetPose's locked read-and-fill, so this changes
// no externally observable ordering guarantee: callers still see the
// same byte-identical-within-a-frame results GetPose alone would give.
func (c *Cache) RefreshAll(ctx context.Context, src Source, queries []DeviceQuery, origin Origin) {
	if len(queries) == 0 {
		return
	}
	maxGoroutines := runtime.GOMAXPROCS(0)
	if len(queries) < maxGoroutines {
		maxGoroutines = len(queries)
	}

	p := pool.New().WithMaxGoroutines(maxGoroutines)
	for _, q := range queries {
		q := q
		p.Go(func() {
			_, _ = c.GetPose(ctx, src, q.Index, origin, q.IsController, q.Connected)
		})
	}
	p.Wait()
}
