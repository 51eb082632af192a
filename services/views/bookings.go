package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

const (
	listingMaxPages = 10
	rangeMaxPages   = 20
)

// GetBooking fetches a single reservation by its upstream identifier, with
// invoice and info detail included. Zero matches is not an error; the caller
// receives a nil record.
func (s *DefaultViewService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if id == "" {
		return nil, NewValidationError("id is required")
	}

	records, _, err := s.Source.QueryBookings(ctx, map[string]string{
		upstream.ParamID:                  id,
		upstream.ParamIncludeInvoiceItems: "true",
		upstream.ParamIncludeInfoItems:    "true",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// ListBookings is the unscoped listing: recent departures (one month back)
// merged with the provider's default current-and-future set. Cancelled
// records are kept — the listing endpoint exposes full history, unlike the
// dashboard views.
func (s *DefaultViewService) ListBookings(ctx context.Context) (*models.BookingListView, error) {
	today := dates.Today(s.Loc)
	oneMonthBack, err := dates.AddMonths(s.Loc, today, -1)
	if err != nil {
		return nil, err
	}

	var pagesRecent, pagesDefault int
	sets, err := fetchJoint(ctx,
		func(ctx context.Context) ([]models.Booking, error) {
			records, pages, err := s.Source.FetchAllPages(ctx, map[string]string{
				upstream.ParamDepartureFrom: oneMonthBack,
				upstream.ParamDepartureTo:   today,
			}, listingMaxPages)
			pagesRecent = pages
			return records, err
		},
		func(ctx context.Context) ([]models.Booking, error) {
			records, pages, err := s.Source.FetchAllPages(ctx, map[string]string{}, listingMaxPages)
			pagesDefault = pages
			return records, err
		},
	)
	if err != nil {
		return nil, err
	}

	merged := upstream.MergeByID(s.logger(), sets...)

	return &models.BookingListView{
		Count:      len(merged),
		TotalPages: pagesRecent + pagesDefault,
		Data:       merged,
	}, nil
}

// ListBookingsRange lists bookings whose arrival or departure falls in
// [from, to]. The dimension defaults to departure. Cancelled records are
// kept, matching the unscoped listing.
func (s *DefaultViewService) ListBookingsRange(ctx context.Context, from, to, dimension string) (*models.BookingListView, error) {
	if from == "" || to == "" {
		return nil, NewValidationError("from and to are required")
	}
	if !dates.Valid(from) || !dates.Valid(to) {
		return nil, NewValidationError("from and to must be YYYY-MM-DD")
	}

	params := map[string]string{}
	switch dimension {
	case "arrival":
		params[upstream.ParamArrivalFrom] = from
		params[upstream.ParamArrivalTo] = to
	case "", "departure":
		dimension = "departure"
		params[upstream.ParamDepartureFrom] = from
		params[upstream.ParamDepartureTo] = to
	default:
		return nil, NewValidationError("type must be arrival or departure")
	}

	records, pages, err := s.Source.FetchAllPages(ctx, params, rangeMaxPages)
	if err != nil {
		return nil, err
	}

	return &models.BookingListView{
		DateRange:  &models.DateRange{Start: from, End: to},
		Count:      len(records),
		TotalPages: pages,
		Data:       records,
	}, nil
}
