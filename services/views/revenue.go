package views

import (
	"context"

	"porter/models"
	"porter/services/dates"
	"porter/services/upstream"
)

// revenueMaxPages is the largest walk in the system; revenue reports can span
// long departure windows.
const revenueMaxPages = 50

// Revenue totals price and deposit over all non-cancelled bookings departing
// in [from, to], with invoice lines requested for the detail view. Amounts
// the provider encoded as non-numeric count as zero but the booking is still
// counted.
func (s *DefaultViewService) Revenue(ctx context.Context, from, to string) (*models.RevenueView, error) {
	if from == "" || to == "" {
		return nil, NewValidationError("from and to are required")
	}
	if !dates.Valid(from) || !dates.Valid(to) {
		return nil, NewValidationError("from and to must be YYYY-MM-DD")
	}

	records, _, err := s.Source.FetchAllPages(ctx, map[string]string{
		upstream.ParamDepartureFrom:       from,
		upstream.ParamDepartureTo:         to,
		upstream.ParamIncludeInvoiceItems: "true",
	}, revenueMaxPages)
	if err != nil {
		return nil, err
	}

	kept := upstream.ExcludeCancelled(records)

	var totalPrice, totalDeposit float64
	for _, record := range kept {
		totalPrice += record.Price.Float()
		totalDeposit += record.Deposit.Float()
	}

	return &models.RevenueView{
		DateRange: models.DateRange{Start: from, End: to},
		Totals: models.RevenueTotals{
			TotalPrice:   totalPrice,
			TotalDeposit: totalDeposit,
			Outstanding:  totalPrice - totalDeposit,
			BookingCount: len(kept),
		},
		Bookings: kept,
	}, nil
}
