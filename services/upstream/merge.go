package upstream

import (
	"porter/models"

	"go.uber.org/zap"
)

// MergeByID folds any number of partial record sets into one deduplicated
// collection keyed by booking ID. Sets are folded in argument order and the
// last write wins, so the result is deterministic for a fixed call-site
// ordering. The ordering carries no precedence meaning: when two sets
// disagree on a record's fields, whichever happens to be folded last simply
// wins. A conflict is logged at debug level so disagreements are at least
// visible.
func MergeByID(logger *zap.Logger, sets ...[]models.Booking) []models.Booking {
	if logger == nil {
		logger = zap.NewNop()
	}

	index := make(map[int64]int)
	merged := make([]models.Booking, 0)

	for _, set := range sets {
		for _, record := range set {
			if at, seen := index[record.ID]; seen {
				logger.Debug("Merge conflict: duplicate booking id, later source wins",
					zap.Int64("bookingId", record.ID))
				merged[at] = record
				continue
			}
			index[record.ID] = len(merged)
			merged = append(merged, record)
		}
	}
	return merged
}

// ExcludeCancelled strips cancelled-status records. Presentation views apply
// this; search and the raw listing intentionally do not.
func ExcludeCancelled(records []models.Booking) []models.Booking {
	kept := make([]models.Booking, 0, len(records))
	for _, record := range records {
		if record.Cancelled() {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}
