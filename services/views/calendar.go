package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

// calendarMaxPages caps each range walk on the calendar view.
const calendarMaxPages = 20

// Calendar assembles the merged calendar feed over [start, start+days].
// Arrivals and departures in the window are walked page by page, the current
// occupancy is fetched alongside, and all three sets collapse into one
// deduplicated collection. All-or-nothing: a calendar with silently missing
// spans would be worse than an error.
func (s *DefaultViewService) Calendar(ctx context.Context, start string, days int) (*models.CalendarView, error) {
	if start == "" {
		start = dates.Today(s.Loc)
	}
	if !dates.Valid(start) {
		return nil, NewValidationError("start must be YYYY-MM-DD")
	}
	if days <= 0 {
		days = 14
	}

	end, err := dates.AddDays(s.Loc, start, days)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	sets, err := fetchJoint(ctx,
		s.pagedFetch(map[string]string{
			upstream.ParamArrivalFrom: start,
			upstream.ParamArrivalTo:   end,
		}, calendarMaxPages),
		s.pagedFetch(map[string]string{
			upstream.ParamDepartureFrom: start,
			upstream.ParamDepartureTo:   end,
		}, calendarMaxPages),
		s.filterFetch(map[string]string{upstream.ParamFilter: upstream.FilterCurrent}),
	)
	if err != nil {
		return nil, err
	}

	merged := upstream.ExcludeCancelled(upstream.MergeByID(s.logger(), sets...))

	return &models.CalendarView{
		DateRange: models.DateRange{Start: start, End: end, Days: days},
		Count:     len(merged),
		Data:      merged,
	}, nil
}
