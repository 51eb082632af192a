package upstream

import (
	"testing"

	"porter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeByID(t *testing.T) {
	t.Run("dedup is idempotent", func(t *testing.T) {
		set := []models.Booking{
			{ID: 1, Status: models.StatusConfirmed},
			{ID: 2, Status: models.StatusNew},
		}

		merged := MergeByID(nil, set, set)

		require.Len(t, merged, 2)
		ids := map[int64]bool{}
		for _, b := range merged {
			assert.False(t, ids[b.ID], "duplicate id %d survived the fold", b.ID)
			ids[b.ID] = true
		}
		assert.True(t, ids[1])
		assert.True(t, ids[2])
	})

	t.Run("last source wins on conflicting fields", func(t *testing.T) {
		setA := []models.Booking{{ID: 7, GuestName: "from A", Status: models.StatusConfirmed}}
		setB := []models.Booking{{ID: 7, GuestName: "from B", Status: models.StatusConfirmed}}

		// Repeated runs with a fixed input order always resolve the same way.
		for i := 0; i < 10; i++ {
			merged := MergeByID(nil, setA, setB)
			require.Len(t, merged, 1)
			assert.Equal(t, "from B", merged[0].GuestName)
		}
	})

	t.Run("first-seen position is kept, value is overwritten", func(t *testing.T) {
		setA := []models.Booking{{ID: 1}, {ID: 2, GuestName: "old"}}
		setB := []models.Booking{{ID: 2, GuestName: "new"}, {ID: 3}}

		merged := MergeByID(nil, setA, setB)

		require.Len(t, merged, 3)
		assert.Equal(t, int64(1), merged[0].ID)
		assert.Equal(t, int64(2), merged[1].ID)
		assert.Equal(t, "new", merged[1].GuestName)
		assert.Equal(t, int64(3), merged[2].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeByID(nil))
		assert.Empty(t, MergeByID(nil, nil, nil))
	})
}

func TestExcludeCancelled(t *testing.T) {
	records := []models.Booking{
		{ID: 1, Status: models.StatusConfirmed},
		{ID: 2, Status: models.StatusCancelled},
		{ID: 3, Status: "Cancelled"}, // provider casing varies
		{ID: 4, Status: models.StatusRequest},
	}

	kept := ExcludeCancelled(records)

	require.Len(t, kept, 2)
	for _, b := range kept {
		assert.False(t, b.Cancelled())
	}
	assert.Equal(t, int64(1), kept[0].ID)
	assert.Equal(t, int64(4), kept[1].ID)
}
