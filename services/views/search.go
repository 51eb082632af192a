package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

const searchMaxPages = 20

// Search runs a free-text and/or arrival-bounded booking search. At least one
// of q and checkIn must be supplied. Cancelled bookings are NOT filtered out
// here: staff searching for a guest expect to find a cancelled reservation
// too.
func (s *DefaultViewService) Search(ctx context.Context, q, checkIn, checkOut string) (*models.SearchView, error) {
	if q == "" && checkIn == "" {
		return nil, NewValidationError("either q or checkIn is required")
	}
	if checkIn != "" && !dates.Valid(checkIn) {
		return nil, NewValidationError("checkIn must be YYYY-MM-DD")
	}
	if checkOut != "" && !dates.Valid(checkOut) {
		return nil, NewValidationError("checkOut must be YYYY-MM-DD")
	}

	records, _, err := s.Source.FetchAllPages(ctx, map[string]string{
		upstream.ParamSearchString: q,
		upstream.ParamArrivalFrom:  checkIn,
		upstream.ParamArrivalTo:    checkOut,
	}, searchMaxPages)
	if err != nil {
		return nil, err
	}

	return &models.SearchView{
		Count: len(records),
		Data:  records,
	}, nil
}
