package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientQuery(t *testing.T) {
	t.Run("empty parameters are never serialized", func(t *testing.T) {
		var query url.Values
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			fmt.Fprint(w, `{"bookings":[]}`)
		})

		_, _, err := client.Query(context.Background(), ResourceBookings, map[string]string{
			ParamFilter:       FilterCurrent,
			ParamArrivalFrom:  "",
			ParamSearchString: "",
			ParamStatus:       "confirmed",
		}, http.MethodGet, nil)

		require.NoError(t, err)
		assert.Equal(t, FilterCurrent, query.Get(ParamFilter))
		assert.Equal(t, "confirmed", query.Get(ParamStatus))
		assert.False(t, query.Has(ParamArrivalFrom), "empty param must be omitted, not sent blank")
		assert.False(t, query.Has(ParamSearchString))
	})

	t.Run("reads carry the permanent api key", func(t *testing.T) {
		var apiKey, authHeader string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			apiKey = r.Header.Get("Api-Key")
			authHeader = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"bookings":[]}`)
		})

		_, _, err := client.QueryBookings(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "test-key", apiKey)
		assert.Empty(t, authHeader, "reads must not trigger the refresh-token flow")
	})

	t.Run("bare array payload is normalized", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":1,"status":"confirmed"},{"id":2,"status":"new"}]`)
		})

		records, _, err := client.QueryBookings(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int64(1), records[0].ID)
	})

	t.Run("single wrapped object is normalized to one record", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"bookings":{"id":42,"status":"confirmed","arrival":"2024-05-01"}}`)
		})

		records, _, err := client.QueryBookings(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(42), records[0].ID)
	})

	t.Run("provider-reported failure maps to UpstreamRequestFailed", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":false,"error":"invalid filter"}`)
		})

		_, _, err := client.QueryBookings(context.Background(), nil)

		require.Error(t, err)
		assert.True(t, IsRequestFailed(err))
		assert.Contains(t, err.Error(), "invalid filter")
	})

	t.Run("transport failure maps to UpstreamUnreachable", func(t *testing.T) {
		client := &Client{
			BaseURL:     "http://127.0.0.1:1", // nothing listens here
			APIKey:      "k",
			HTTPClient:  &http.Client{},
			CallTimeout: time.Second,
		}

		_, _, err := client.QueryBookings(context.Background(), nil)

		require.Error(t, err)
		assert.True(t, IsUnreachable(err))
	})

	t.Run("deadline breach maps to UpstreamUnreachable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			fmt.Fprint(w, `{"bookings":[]}`)
		})
		client.CallTimeout = 20 * time.Millisecond

		_, _, err := client.QueryBookings(context.Background(), nil)

		require.Error(t, err)
		assert.True(t, IsUnreachable(err))
	})

	t.Run("rate limit headers update the snapshot", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Remaining", "870")
			w.Header().Set("X-RateLimit-Reset", "45")
			w.Header().Set("X-RateLimit-Cost", "3")
			fmt.Fprint(w, `{"bookings":[]}`)
		})

		_, _, err := client.QueryBookings(context.Background(), nil)
		require.NoError(t, err)

		snap := client.Rate.Snapshot()
		assert.Equal(t, 870, snap.Remaining)
		assert.Equal(t, 45*time.Second, snap.ResetWindow)
		assert.Equal(t, 3, snap.LastCost)
		assert.False(t, snap.UpdatedAt.IsZero())
	})

	t.Run("absent rate limit headers do not fail the call", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"bookings":[]}`)
		})

		_, _, err := client.QueryBookings(context.Background(), nil)

		require.NoError(t, err)
		assert.True(t, client.Rate.Snapshot().UpdatedAt.IsZero())
	})

	t.Run("page metadata is surfaced", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"bookings":[{"id":1,"status":"confirmed"}],"page":2,"pageCount":7,"totalItems":130}`)
		})

		_, meta, err := client.QueryBookings(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 7, meta.PageCount)
		assert.Equal(t, 130, meta.Total)
		assert.True(t, meta.HasNext())
	})
}
