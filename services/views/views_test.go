package views

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"porter/models"
	"porter/services/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testZone = time.FixedZone("UTC+6", 6*3600)

// fakeSource scripts upstream responses per filter parameter set.
type fakeSource struct {
	query func(params map[string]string) ([]models.Booking, models.PageMeta, error)
	paged func(params map[string]string, maxPages int) ([]models.Booking, int, error)
}

func (f *fakeSource) QueryBookings(_ context.Context, params map[string]string) ([]models.Booking, models.PageMeta, error) {
	return f.query(params)
}

func (f *fakeSource) FetchAllPages(_ context.Context, params map[string]string, maxPages int) ([]models.Booking, int, error) {
	if f.paged == nil {
		records, _, err := f.query(params)
		return records, 1, err
	}
	return f.paged(params, maxPages)
}

func newService(src upstream.BookingSource) *DefaultViewService {
	return &DefaultViewService{Source: src, Loc: testZone, Logger: zap.NewNop()}
}

func confirmed(id int64) models.Booking {
	return models.Booking{ID: id, Status: models.StatusConfirmed}
}

func TestOverview(t *testing.T) {
	t.Run("counts occupied, check-ins and check-outs", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			switch {
			case params[upstream.ParamFilter] == upstream.FilterCurrent:
				return []models.Booking{confirmed(1)}, models.PageMeta{}, nil
			case params[upstream.ParamArrival] == "2024-05-10":
				return []models.Booking{confirmed(2)}, models.PageMeta{}, nil
			case params[upstream.ParamDeparture] == "2024-05-10":
				return []models.Booking{confirmed(1)}, models.PageMeta{}, nil
			}
			return nil, models.PageMeta{}, nil
		}}

		v, err := newService(src).Overview(context.Background(), "2024-05-10")

		require.NoError(t, err)
		assert.Equal(t, models.OverviewStats{Occupied: 1, CheckIns: 1, CheckOuts: 1}, v.Stats)
		assert.Len(t, v.Current, 1)
		assert.Len(t, v.Arrivals, 1)
		assert.Len(t, v.Departures, 1)
	})

	t.Run("cancelled records never reach a panel", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			return []models.Booking{
				confirmed(1),
				{ID: 2, Status: models.StatusCancelled},
			}, models.PageMeta{}, nil
		}}

		v, err := newService(src).Overview(context.Background(), "2024-05-10")

		require.NoError(t, err)
		for _, set := range [][]models.Booking{v.Current, v.Arrivals, v.Departures} {
			for _, b := range set {
				assert.False(t, b.Cancelled())
			}
		}
		assert.Equal(t, 1, v.Stats.Occupied)
	})

	t.Run("a failed dimension degrades to an empty panel", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			if params[upstream.ParamFilter] == upstream.FilterCurrent {
				return nil, models.PageMeta{}, upstream.NewUnreachableError("timeout")
			}
			return []models.Booking{confirmed(3)}, models.PageMeta{}, nil
		}}

		v, err := newService(src).Overview(context.Background(), "2024-05-10")

		require.NoError(t, err, "overview is tolerant of individual fetch failures")
		assert.Equal(t, 0, v.Stats.Occupied)
		assert.Equal(t, 1, v.Stats.CheckIns)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := newService(&fakeSource{}).Overview(context.Background(), "10-05-2024")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestHousekeeping(t *testing.T) {
	t.Run("stayover classification", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			if params[upstream.ParamFilter] == upstream.FilterCurrent {
				return []models.Booking{
					{ID: 1, Status: models.StatusConfirmed, Departure: "2024-05-10"}, // departs today
					{ID: 2, Status: models.StatusConfirmed, Departure: "2024-05-11"}, // stays on
				}, models.PageMeta{}, nil
			}
			return nil, models.PageMeta{}, nil
		}}

		v, err := newService(src).Housekeeping(context.Background(), "2024-05-10")

		require.NoError(t, err)
		require.Len(t, v.Stayovers, 1)
		assert.Equal(t, int64(2), v.Stayovers[0].ID, "same-day departure is departing, not stayover")
		assert.Equal(t, 2, v.Summary.Occupied)
		assert.Equal(t, 1, v.Summary.Stayovers)
	})
}

func TestMovements(t *testing.T) {
	t.Run("check-ins and check-outs stay separate", func(t *testing.T) {
		turnover := confirmed(5) // same booking arrives and departs that day
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			return []models.Booking{turnover}, models.PageMeta{}, nil
		}}

		v, err := newService(src).Movements(context.Background(), "2024-05-10")

		require.NoError(t, err)
		assert.Equal(t, 1, v.CheckIns.Count)
		assert.Equal(t, 1, v.CheckOuts.Count)
		// Appearing in both lists is correct; the sets are never merged.
		assert.Equal(t, v.CheckIns.Data[0].ID, v.CheckOuts.Data[0].ID)
	})

	t.Run("any failed fetch aborts the view", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			if params[upstream.ParamDeparture] != "" {
				return nil, models.PageMeta{}, upstream.NewRequestFailedError("bad filter")
			}
			return nil, models.PageMeta{}, nil
		}}

		_, err := newService(src).Movements(context.Background(), "2024-05-10")

		require.Error(t, err)
		assert.True(t, upstream.IsRequestFailed(err))
	})
}

func TestCalendar(t *testing.T) {
	t.Run("merges the three dimensions by id", func(t *testing.T) {
		src := &fakeSource{
			query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
				// current occupancy
				return []models.Booking{confirmed(1)}, models.PageMeta{}, nil
			},
			paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
				if params[upstream.ParamArrivalFrom] != "" {
					return []models.Booking{confirmed(1), confirmed(2)}, 1, nil
				}
				return []models.Booking{confirmed(2), confirmed(3)}, 1, nil
			},
		}

		v, err := newService(src).Calendar(context.Background(), "2024-05-01", 7)

		require.NoError(t, err)
		assert.Equal(t, "2024-05-01", v.DateRange.Start)
		assert.Equal(t, "2024-05-08", v.DateRange.End)
		assert.Equal(t, 3, v.Count, "overlapping records collapse to one per id")
	})

	t.Run("all-or-nothing on failure", func(t *testing.T) {
		src := &fakeSource{
			query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
				return nil, models.PageMeta{}, nil
			},
			paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
				return nil, 0, upstream.NewUnreachableError("timeout")
			},
		}

		_, err := newService(src).Calendar(context.Background(), "2024-05-01", 7)

		require.Error(t, err)
		assert.True(t, upstream.IsUnreachable(err))
	})
}

func TestRevenue(t *testing.T) {
	t.Run("totals tolerate non-numeric amounts", func(t *testing.T) {
		// Decode through the wire format so the non-numeric price exercises
		// the same coercion production traffic hits.
		var records []models.Booking
		raw := `[
			{"id":1,"status":"confirmed","price":100,"deposit":50},
			{"id":2,"status":"confirmed","price":200,"deposit":0},
			{"id":3,"status":"confirmed","price":"bad","deposit":20}
		]`
		require.NoError(t, json.Unmarshal([]byte(raw), &records))

		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			assert.Equal(t, "true", params[upstream.ParamIncludeInvoiceItems])
			return records, 1, nil
		}}

		v, err := newService(src).Revenue(context.Background(), "2024-05-01", "2024-05-31")

		require.NoError(t, err)
		assert.Equal(t, 300.0, v.Totals.TotalPrice)
		assert.Equal(t, 70.0, v.Totals.TotalDeposit)
		assert.Equal(t, 230.0, v.Totals.Outstanding)
		assert.Equal(t, 3, v.Totals.BookingCount, "record with unparsable price still counts")
	})

	t.Run("cancelled bookings are excluded from totals", func(t *testing.T) {
		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			return []models.Booking{
				{ID: 1, Status: models.StatusConfirmed, Price: 100},
				{ID: 2, Status: models.StatusCancelled, Price: 999},
			}, 1, nil
		}}

		v, err := newService(src).Revenue(context.Background(), "2024-05-01", "2024-05-31")

		require.NoError(t, err)
		assert.Equal(t, 100.0, v.Totals.TotalPrice)
		assert.Equal(t, 1, v.Totals.BookingCount)
	})

	t.Run("missing range is a validation error", func(t *testing.T) {
		_, err := newService(&fakeSource{}).Revenue(context.Background(), "", "2024-05-31")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestSearch(t *testing.T) {
	t.Run("needs q or checkIn", func(t *testing.T) {
		_, err := newService(&fakeSource{}).Search(context.Background(), "", "", "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("cancelled matches are kept", func(t *testing.T) {
		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			assert.Equal(t, "smith", params[upstream.ParamSearchString])
			return []models.Booking{
				{ID: 1, Status: models.StatusConfirmed},
				{ID: 2, Status: models.StatusCancelled},
			}, 1, nil
		}}

		v, err := newService(src).Search(context.Background(), "smith", "", "")

		require.NoError(t, err)
		assert.Equal(t, 2, v.Count, "search exposes cancelled bookings on purpose")
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("zero matches is a null result, not an error", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			assert.Equal(t, "12345", params[upstream.ParamID])
			assert.Equal(t, "true", params[upstream.ParamIncludeInvoiceItems])
			assert.Equal(t, "true", params[upstream.ParamIncludeInfoItems])
			return nil, models.PageMeta{}, nil
		}}

		record, err := newService(src).GetBooking(context.Background(), "12345")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("first match is returned", func(t *testing.T) {
		src := &fakeSource{query: func(params map[string]string) ([]models.Booking, models.PageMeta, error) {
			return []models.Booking{confirmed(9)}, models.PageMeta{}, nil
		}}

		record, err := newService(src).GetBooking(context.Background(), "9")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(9), record.ID)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("merges recent departures with the default set, keeping cancelled", func(t *testing.T) {
		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			if params[upstream.ParamDepartureFrom] != "" {
				return []models.Booking{
					{ID: 1, Status: models.StatusCancelled},
					confirmed(2),
				}, 2, nil
			}
			return []models.Booking{confirmed(2), confirmed(3)}, 3, nil
		}}

		v, err := newService(src).ListBookings(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, v.Count)
		assert.Equal(t, 5, v.TotalPages)

		var sawCancelled bool
		for _, b := range v.Data {
			if b.Cancelled() {
				sawCancelled = true
			}
		}
		assert.True(t, sawCancelled, "the raw listing keeps cancelled records")
	})
}

func TestListBookingsRange(t *testing.T) {
	t.Run("missing bounds are a validation error", func(t *testing.T) {
		_, err := newService(&fakeSource{}).ListBookingsRange(context.Background(), "2024-05-01", "", "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("dimension defaults to departure", func(t *testing.T) {
		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			assert.Equal(t, "2024-05-01", params[upstream.ParamDepartureFrom])
			assert.Equal(t, "2024-05-31", params[upstream.ParamDepartureTo])
			assert.False(t, params[upstream.ParamArrivalFrom] != "", "arrival bounds must not be set")
			return []models.Booking{confirmed(1)}, 1, nil
		}}

		v, err := newService(src).ListBookingsRange(context.Background(), "2024-05-01", "2024-05-31", "")

		require.NoError(t, err)
		assert.Equal(t, 1, v.Count)
		require.NotNil(t, v.DateRange)
		assert.Equal(t, "2024-05-01", v.DateRange.Start)
	})

	t.Run("arrival dimension switches the bounds", func(t *testing.T) {
		src := &fakeSource{paged: func(params map[string]string, maxPages int) ([]models.Booking, int, error) {
			assert.Equal(t, "2024-05-01", params[upstream.ParamArrivalFrom])
			assert.Empty(t, params[upstream.ParamDepartureFrom])
			return nil, 1, nil
		}}

		_, err := newService(src).ListBookingsRange(context.Background(), "2024-05-01", "2024-05-31", "arrival")
		require.NoError(t, err)
	})

	t.Run("unknown dimension is rejected", func(t *testing.T) {
		_, err := newService(&fakeSource{}).ListBookingsRange(context.Background(), "2024-05-01", "2024-05-31", "modified")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestFetchJoint(t *testing.T) {
	t.Run("sets come back in argument order", func(t *testing.T) {
		sets, err := fetchJoint(context.Background(),
			func(ctx context.Context) ([]models.Booking, error) {
				time.Sleep(20 * time.Millisecond) // finishes last
				return []models.Booking{confirmed(1)}, nil
			},
			func(ctx context.Context) ([]models.Booking, error) {
				return []models.Booking{confirmed(2)}, nil
			},
		)

		require.NoError(t, err)
		assert.Equal(t, int64(1), sets[0][0].ID, "fold order follows the call site, not completion order")
		assert.Equal(t, int64(2), sets[1][0].ID)
	})

	t.Run("waits for all before reporting the first error", func(t *testing.T) {
		var secondDone bool
		_, err := fetchJoint(context.Background(),
			func(ctx context.Context) ([]models.Booking, error) {
				return nil, errors.New("fetch failed")
			},
			func(ctx context.Context) ([]models.Booking, error) {
				time.Sleep(10 * time.Millisecond)
				secondDone = true
				return nil, nil
			},
		)

		require.Error(t, err)
		assert.True(t, secondDone, "all fetches are awaited jointly")
	})
}
