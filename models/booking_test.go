package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmount(t *testing.T) {
	t.Run("tolerates the provider's encodings", func(t *testing.T) {
		var b Booking
		raw := `{"id":7,"status":"confirmed","price":"149.99","deposit":null}`
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, 149.99, b.Price.Float())
		assert.Equal(t, 0.0, b.Deposit.Float())
	})

	t.Run("garbage decodes as zero without failing the record", func(t *testing.T) {
		var b Booking
		raw := `{"id":8,"status":"confirmed","price":"n/a","deposit":25}`
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, 0.0, b.Price.Float())
		assert.Equal(t, 25.0, b.Deposit.Float())
		assert.Equal(t, int64(8), b.ID, "surrounding fields survive")
	})

	t.Run("empty string is zero", func(t *testing.T) {
		var a FlexAmount
		require.NoError(t, json.Unmarshal([]byte(`""`), &a))
		assert.Equal(t, 0.0, a.Float())
	})
}

func TestCancelled(t *testing.T) {
	assert.True(t, Booking{Status: "cancelled"}.Cancelled())
	assert.True(t, Booking{Status: "Cancelled"}.Cancelled(), "matching is case-insensitive")
	assert.False(t, Booking{Status: "channel-cancelled"}.Cancelled())
	assert.False(t, Booking{Status: StatusConfirmed}.Cancelled())
	assert.False(t, Booking{}.Cancelled())
}

func TestPageMetaHasNext(t *testing.T) {
	assert.True(t, PageMeta{Page: 1, PageCount: 3}.HasNext())
	assert.False(t, PageMeta{Page: 3, PageCount: 3}.HasNext())
	assert.False(t, PageMeta{}.HasNext(), "absent metadata means a single page")
}
