package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Missing event id rejects row", func(t *testing.T) {
		t.Parallel()

		_, _, ok := EventDate(EventDateInput{Label: "12 May", SeatsTotal: 10}, now)

		assert.False(t, ok)
	})

	t.Run("Blank event id rejects row", func(t *testing.T) {
		t.Parallel()

		_, _, ok := EventDate(EventDateInput{EventID: "   ", Label: "12 May"}, now)

		assert.False(t, ok)
	})

	t.Run("Seats available defaults to total", func(t *testing.T) {
		t.Parallel()

		out, defaulted, ok := EventDate(EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 10}, now)

		require.True(t, ok)
		assert.Equal(t, 10, out.SeatsTotal)
		assert.Equal(t, 10, out.SeatsAvailable)
		assert.Contains(t, defaulted, "seats_available")
	})

	t.Run("Seats available not clamped to total", func(t *testing.T) {
		t.Parallel()

		avail := 50
		out, _, ok := EventDate(EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 10, SeatsAvailable: &avail}, now)

		require.True(t, ok)
		assert.Equal(t, 50, out.SeatsAvailable)
	})

	t.Run("Seat counters clamped to bounds", func(t *testing.T) {
		t.Parallel()

		avail := -5
		out, _, ok := EventDate(EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 2_000_000, SeatsAvailable: &avail}, now)

		require.True(t, ok)
		assert.Equal(t, MaxSeats, out.SeatsTotal)
		assert.Equal(t, 0, out.SeatsAvailable)
	})

	t.Run("Id and timestamp generated", func(t *testing.T) {
		t.Parallel()

		out, defaulted, ok := EventDate(EventDateInput{EventID: "tasting", Label: "12 May"}, now)

		require.True(t, ok)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, now, out.CreatedAt)
		assert.Contains(t, defaulted, "id")
		assert.Contains(t, defaulted, "created_at")
	})

	t.Run("Existing timestamp preserved", func(t *testing.T) {
		t.Parallel()

		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		out, _, ok := EventDate(EventDateInput{ID: "d1", EventID: "tasting", Label: "12 May", CreatedAt: created}, now)

		require.True(t, ok)
		assert.Equal(t, created, out.CreatedAt)
	})

	t.Run("Empty label defaulted", func(t *testing.T) {
		t.Parallel()

		out, defaulted, ok := EventDate(EventDateInput{EventID: "tasting"}, now)

		require.True(t, ok)
		assert.Equal(t, DefaultDateLabel, out.Label)
		assert.Contains(t, defaulted, "label")
	})
}
