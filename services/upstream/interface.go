package upstream

import (
	"context"

	"porter/models"
)

// Upstream resources this deployment queries.
const (
	ResourceBookings   = "bookings"
	ResourceProperties = "properties"
)

// Filter dimensions the provider supports on the bookings resource.
const (
	FilterCurrent    = "current"
	FilterArrivals   = "arrivals"
	FilterDepartures = "departures"
	FilterNew        = "new"
)

// Query parameter names understood by the provider. Empty values are never
// serialized; the client drops them before the request goes out.
const (
	ParamFilter              = "filter"
	ParamStatus              = "status"
	ParamChannel             = "channel"
	ParamPropertyID          = "propertyId"
	ParamRoomID              = "roomId"
	ParamID                  = "id"
	ParamMasterID            = "masterId"
	ParamAPIReference        = "apiReference"
	ParamArrival             = "arrival"
	ParamArrivalFrom         = "arrivalFrom"
	ParamArrivalTo           = "arrivalTo"
	ParamDeparture           = "departure"
	ParamDepartureFrom       = "departureFrom"
	ParamDepartureTo         = "departureTo"
	ParamBookingTimeFrom     = "bookingTimeFrom"
	ParamBookingTimeTo       = "bookingTimeTo"
	ParamModifiedFrom        = "modifiedFrom"
	ParamModifiedTo          = "modifiedTo"
	ParamSearchString        = "searchString"
	ParamIncludeInvoiceItems = "includeInvoiceItems"
	ParamIncludeInfoItems    = "includeInfoItems"
	ParamIncludeGuests       = "includeGuests"
	ParamIncludeBookingGroup = "includeBookingGroup"
	ParamPage                = "page"
)

// BookingSource is the slice of the upstream client the view assemblers
// consume. Views never issue writes.
type BookingSource interface {
	// QueryBookings runs a single unpaginated bookings query.
	QueryBookings(ctx context.Context, params map[string]string) ([]models.Booking, models.PageMeta, error)
	// FetchAllPages walks the paginated bookings resource up to maxPages.
	FetchAllPages(ctx context.Context, params map[string]string, maxPages int) ([]models.Booking, int, error)
}
