package upstream

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"porter/models"

	"go.uber.org/zap"
)

// interPageDelay spaces sequential page requests so a long walk does not
// burst the provider's rate limiter. Skipped after the final page.
const interPageDelay = 50 * time.Millisecond

// FetchAllPages walks the paginated bookings resource starting at page 1 and
// accumulates every page's records in upstream order. It stops when the
// provider signals no further page or after maxPages, whichever comes first;
// the cap guarantees termination even against an upstream that always claims
// another page exists. Records are not deduplicated here — a single filtered
// query does not repeat records across pages; dedup across different filter
// queries is the merge engine's job.
func (c *Client) FetchAllPages(ctx context.Context, params map[string]string, maxPages int) ([]models.Booking, int, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	var all []models.Booking
	pagesFetched := 0

	for page := 1; page <= maxPages; page++ {
		paged := make(map[string]string, len(params)+1)
		for k, v := range params {
			paged[k] = v
		}
		paged[ParamPage] = strconv.Itoa(page)

		records, meta, err := c.Query(ctx, ResourceBookings, paged, http.MethodGet, nil)
		if err != nil {
			return nil, pagesFetched, err
		}
		all = append(all, records...)
		pagesFetched++

		if !meta.HasNext() {
			break
		}
		if page == maxPages {
			c.logger().Warn("Pagination cap reached before upstream reported last page",
				zap.Int("maxPages", maxPages))
			break
		}

		select {
		case <-time.After(interPageDelay):
		case <-ctx.Done():
			return nil, pagesFetched, NewUnreachableError(ctx.Err().Error())
		}
	}

	return all, pagesFetched, nil
}
