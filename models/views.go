package models

// OverviewStats are the headline counts on the front-desk overview.
type OverviewStats struct {
	Occupied  int `json:"occupied"`
	CheckIns  int `json:"checkIns"`
	CheckOuts int `json:"checkOuts"`
}

// OverviewView is today's (or any date's) front-desk overview.
type OverviewView struct {
	Date       string        `json:"date"`
	Stats      OverviewStats `json:"stats"`
	Current    []Booking     `json:"current"`
	Arrivals   []Booking     `json:"arrivals"`
	Departures []Booking     `json:"departures"`
}

// DateRange labels the civil-date window a view covers.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days,omitempty"`
}

// CalendarView is the merged calendar feed over a date span.
type CalendarView struct {
	DateRange DateRange `json:"dateRange"`
	Count     int       `json:"count"`
	Data      []Booking `json:"data"`
}

// MovementSet is one labeled list of arrivals or departures.
type MovementSet struct {
	Count int       `json:"count"`
	Data  []Booking `json:"data"`
}

// MovementsView keeps check-ins and check-outs as two distinct lists;
// they are intentionally never merged.
type MovementsView struct {
	Date      string      `json:"date"`
	CheckIns  MovementSet `json:"checkIns"`
	CheckOuts MovementSet `json:"checkOuts"`
}

// HousekeepingSummary are the room-status counts for a housekeeping round.
type HousekeepingSummary struct {
	Occupied  int `json:"occupied"`
	Departing int `json:"departing"`
	Arriving  int `json:"arriving"`
	Stayovers int `json:"stayovers"`
}

// HousekeepingView classifies the house for a given date.
type HousekeepingView struct {
	Date       string              `json:"date"`
	Summary    HousekeepingSummary `json:"summary"`
	Departures []Booking           `json:"departures"`
	Arrivals   []Booking           `json:"arrivals"`
	Stayovers  []Booking           `json:"stayovers"`
}

// RevenueTotals aggregates price and deposit over a departure window.
type RevenueTotals struct {
	TotalPrice   float64 `json:"totalPrice"`
	TotalDeposit float64 `json:"totalDeposit"`
	Outstanding  float64 `json:"outstanding"`
	BookingCount int     `json:"bookingCount"`
}

// RevenueView is the revenue report over a departure date range.
type RevenueView struct {
	DateRange DateRange     `json:"dateRange"`
	Totals    RevenueTotals `json:"totals"`
	Bookings  []Booking     `json:"bookings"`
}

// SearchView is a free-text / arrival-bounded booking search result.
// Cancelled bookings are included on purpose.
type SearchView struct {
	Count int       `json:"count"`
	Data  []Booking `json:"data"`
}

// BookingListView is the unscoped or range-scoped booking listing.
// Cancelled bookings are included on purpose.
type BookingListView struct {
	DateRange  *DateRange `json:"dateRange,omitempty"`
	Count      int        `json:"count"`
	TotalPages int        `json:"totalPages"`
	Data       []Booking  `json:"data"`
}
