package views

import (
	"context"
	"sync"

	"porter/models"

	"go.uber.org/zap"
)

// fetchFn is one filtered upstream fetch producing a partial record set.
type fetchFn func(ctx context.Context) ([]models.Booking, error)

// fetchJoint starts all fetches together, waits for every one, and returns
// the partial sets in argument order so a later fold stays deterministic
// regardless of network completion order. The first error (in argument
// order) aborts the view.
func fetchJoint(ctx context.Context, fns ...fetchFn) ([][]models.Booking, error) {
	sets := make([][]models.Booking, len(fns))
	errs := make([]error, len(fns))

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn fetchFn) {
			defer wg.Done()
			sets[i], errs[i] = fn(ctx)
		}(i, fn)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sets, nil
}

// fetchSettled is the tolerant variant: a failed fetch degrades to an empty
// set for that one dimension instead of blanking the whole view. Used by the
// overview and housekeeping dashboards, where one stale panel beats a dead
// screen.
func fetchSettled(ctx context.Context, logger *zap.Logger, fns ...fetchFn) [][]models.Booking {
	sets := make([][]models.Booking, len(fns))

	var wg sync.WaitGroup
	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn fetchFn) {
			defer wg.Done()
			records, err := fn(ctx)
			if err != nil {
				logger.Warn("Partial fetch failed, substituting empty set",
					zap.Int("fetchIndex", i), zap.Error(err))
				records = nil
			}
			sets[i] = records
		}(i, fn)
	}
	wg.Wait()
	return sets
}
