package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

// Movements assembles the day's check-ins and check-outs as two distinct
// labeled lists. Unlike the calendar view the two sets are never merged: a
// same-day turnover appears in both lists. All-or-nothing failure.
func (s *DefaultViewService) Movements(ctx context.Context, date string) (*models.MovementsView, error) {
	if date == "" {
		date = dates.Today(s.Loc)
	}
	if !dates.Valid(date) {
		return nil, NewValidationError("date must be YYYY-MM-DD")
	}

	sets, err := fetchJoint(ctx,
		s.filterFetch(map[string]string{upstream.ParamArrival: date}),
		s.filterFetch(map[string]string{upstream.ParamDeparture: date}),
	)
	if err != nil {
		return nil, err
	}

	checkIns := upstream.ExcludeCancelled(sets[0])
	checkOuts := upstream.ExcludeCancelled(sets[1])

	return &models.MovementsView{
		Date:      date,
		CheckIns:  models.MovementSet{Count: len(checkIns), Data: checkIns},
		CheckOuts: models.MovementSet{Count: len(checkOuts), Data: checkOuts},
	}, nil
}
