package views

import (
	"context"
	"time"

	"porter/models"
	"porter/services/upstream"

	"go.uber.org/zap"
)

// DashboardViewService assembles the dashboard-facing views. Every call
// triggers fresh upstream fetches; nothing is cached between requests.
type DashboardViewService interface {
	Overview(ctx context.Context, date string) (*models.OverviewView, error)
	Calendar(ctx context.Context, start string, days int) (*models.CalendarView, error)
	Movements(ctx context.Context, date string) (*models.MovementsView, error)
	Housekeeping(ctx context.Context, date string) (*models.HousekeepingView, error)
	Revenue(ctx context.Context, from, to string) (*models.RevenueView, error)
	Search(ctx context.Context, q, checkIn, checkOut string) (*models.SearchView, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) (*models.BookingListView, error)
	ListBookingsRange(ctx context.Context, from, to, dimension string) (*models.BookingListView, error)
}

// DefaultViewService implements DashboardViewService on top of the upstream
// booking source and the property's fixed timezone.
type DefaultViewService struct {
	Source upstream.BookingSource
	Loc    *time.Location
	Logger *zap.Logger
}

func (s *DefaultViewService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
