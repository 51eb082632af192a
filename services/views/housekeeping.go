package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

// Housekeeping classifies the house for a given date. A currently-occupied
// room whose departure is not the query date is a stayover; a departure on
// the query date is departing, never stayover. Tolerant like the overview:
// housekeeping rounds should not be blocked by one failed filter query.
func (s *DefaultViewService) Housekeeping(ctx context.Context, date string) (*models.HousekeepingView, error) {
	if date == "" {
		date = dates.Today(s.Loc)
	}
	if !dates.Valid(date) {
		return nil, NewValidationError("date must be YYYY-MM-DD")
	}

	sets := fetchSettled(ctx, s.logger(),
		s.filterFetch(map[string]string{upstream.ParamFilter: upstream.FilterCurrent}),
		s.filterFetch(map[string]string{upstream.ParamDeparture: date}),
		s.filterFetch(map[string]string{upstream.ParamArrival: date}),
	)

	current := upstream.ExcludeCancelled(sets[0])
	departures := upstream.ExcludeCancelled(sets[1])
	arrivals := upstream.ExcludeCancelled(sets[2])

	stayovers := make([]models.Booking, 0, len(current))
	for _, record := range current {
		if record.Departure != date {
			stayovers = append(stayovers, record)
		}
	}

	return &models.HousekeepingView{
		Date: date,
		Summary: models.HousekeepingSummary{
			Occupied:  len(current),
			Departing: len(departures),
			Arriving:  len(arrivals),
			Stayovers: len(stayovers),
		},
		Departures: departures,
		Arrivals:   arrivals,
		Stayovers:  stayovers,
	}, nil
}
