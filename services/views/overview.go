package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

// Overview assembles the front-desk overview for one date: who is in house,
// who arrives, who leaves. The three dimensions are fetched together and
// settled tolerantly — if one filter query fails, its panel shows empty
// rather than failing the whole dashboard.
func (s *DefaultViewService) Overview(ctx context.Context, date string) (*models.OverviewView, error) {
	if date == "" {
		date = dates.Today(s.Loc)
	}
	if !dates.Valid(date) {
		return nil, NewValidationError("date must be YYYY-MM-DD")
	}

	sets := fetchSettled(ctx, s.logger(),
		s.filterFetch(map[string]string{upstream.ParamFilter: upstream.FilterCurrent}),
		s.filterFetch(map[string]string{upstream.ParamArrival: date}),
		s.filterFetch(map[string]string{upstream.ParamDeparture: date}),
	)

	current := upstream.ExcludeCancelled(sets[0])
	arrivals := upstream.ExcludeCancelled(sets[1])
	departures := upstream.ExcludeCancelled(sets[2])

	return &models.OverviewView{
		Date: date,
		Stats: models.OverviewStats{
			Occupied:  len(current),
			CheckIns:  len(arrivals),
			CheckOuts: len(departures),
		},
		Current:    current,
		Arrivals:   arrivals,
		Departures: departures,
	}, nil
}

// filterFetch wraps a single unpaginated bookings query as a fetchFn.
func (s *DefaultViewService) filterFetch(params map[string]string) fetchFn {
	return func(ctx context.Context) ([]models.Booking, error) {
		records, _, err := s.Source.QueryBookings(ctx, params)
		return records, err
	}
}

// pagedFetch wraps a full pagination walk as a fetchFn.
func (s *DefaultViewService) pagedFetch(params map[string]string, maxPages int) fetchFn {
	return func(ctx context.Context) ([]models.Booking, error) {
		records, _, err := s.Source.FetchAllPages(ctx, params, maxPages)
		return records, err
	}
}
