package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
)

func TestUpsertDate(t *testing.T) {
	t.Parallel()

	t.Run("New row starts with full inventory", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		row, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 10})
		require.NoError(t, err)
		require.NotNil(t, row)

		assert.Equal(t, 10, row.SeatsTotal)
		assert.Equal(t, 10, row.SeatsAvailable)
		assert.False(t, row.CreatedAt.IsZero())
	})

	t.Run("Row without event id is dropped", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		row, err := svc.UpsertDate(normalize.EventDateInput{Label: "12 May", SeatsTotal: 10})
		require.NoError(t, err)
		assert.Nil(t, row)

		rows, err := svc.ListDatesByEvent("")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Update preserves creation timestamp", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		created, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 10})
		require.NoError(t, err)

		avail := 4
		updated, err := svc.UpsertDate(normalize.EventDateInput{
			ID:             created.ID,
			EventID:        "tasting",
			Label:          "12 May (tarde)",
			SeatsTotal:     10,
			SeatsAvailable: &avail,
		})
		require.NoError(t, err)

		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, "12 May (tarde)", updated.Label)
		assert.Equal(t, 4, updated.SeatsAvailable)

		rows, err := svc.ListDatesByEvent("tasting")
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("List is ordered by creation time", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		for _, label := range []string{"first", "second", "third"} {
			_, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: label, SeatsTotal: 5})
			require.NoError(t, err)
		}

		rows, err := svc.ListDatesByEvent("tasting")
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, "first", rows[0].Label)
		assert.Equal(t, "second", rows[1].Label)
		assert.Equal(t, "third", rows[2].Label)
	})

	t.Run("Rows of other events are excluded", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "a", SeatsTotal: 5})
		require.NoError(t, err)
		_, err = svc.UpsertDate(normalize.EventDateInput{EventID: "ceramics", Label: "b", SeatsTotal: 5})
		require.NoError(t, err)

		rows, err := svc.ListDatesByEvent("tasting")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "a", rows[0].Label)
	})
}

func TestDecrementSeat(t *testing.T) {
	t.Parallel()

	t.Run("Decrements down to zero then refuses", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 2})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			ok, err := svc.DecrementSeat("tasting", "12 May")
			require.NoError(t, err)
			assert.True(t, ok)
		}

		ok, err := svc.DecrementSeat("tasting", "12 May")
		require.NoError(t, err)
		assert.False(t, ok)

		rows, err := svc.ListDatesByEvent("tasting")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 0, rows[0].SeatsAvailable)
		assert.Equal(t, 2, rows[0].SeatsTotal)
	})

	t.Run("Unknown label is a no-op", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 5})
		require.NoError(t, err)

		ok, err := svc.DecrementSeat("tasting", "13 May")
		require.NoError(t, err)
		assert.False(t, ok)

		rows, _ := svc.ListDatesByEvent("tasting")
		assert.Equal(t, 5, rows[0].SeatsAvailable)
	})

	t.Run("Label match is exact", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 5})
		require.NoError(t, err)

		// Trailing whitespace makes it a different date.
		ok, err := svc.DecrementSeat("tasting", "12 May ")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = svc.DecrementSeat("tasting", "12 may")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("First row in creation order wins on duplicate labels", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		first, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 5})
		require.NoError(t, err)
		second, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 5})
		require.NoError(t, err)

		ok, err := svc.DecrementSeat("tasting", "12 May")
		require.NoError(t, err)
		assert.True(t, ok)

		rows, err := svc.ListDatesByEvent("tasting")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		for _, r := range rows {
			switch r.ID {
			case first.ID:
				assert.Equal(t, 4, r.SeatsAvailable)
			case second.ID:
				assert.Equal(t, 5, r.SeatsAvailable)
			}
		}
	})

	t.Run("Falls back to legacy array when event has no rows", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, _, err := svc.UpsertEvent(models.Event{
			ID:    "legacy-event",
			Title: "Legacy",
			Dates: []models.LegacyDate{{Label: "Viernes 17", Seats: 3}},
		})
		require.NoError(t, err)

		ok, err := svc.DecrementSeat("legacy-event", "Viernes 17")
		require.NoError(t, err)
		assert.True(t, ok)

		ev, err := svc.Event("legacy-event")
		require.NoError(t, err)
		require.NotNil(t, ev)
		assert.Equal(t, 2, ev.Dates[0].Seats)

		// Still no rows: the fallback must not create any.
		rows, err := svc.ListDatesByEvent("legacy-event")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Legacy fallback refuses at zero", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, _, err := svc.UpsertEvent(models.Event{
			ID:    "legacy-event",
			Title: "Legacy",
			Dates: []models.LegacyDate{{Label: "Viernes 17", Seats: 0}},
		})
		require.NoError(t, err)

		ok, err := svc.DecrementSeat("legacy-event", "Viernes 17")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDeleteDate(t *testing.T) {
	t.Parallel()

	t.Run("Removes one row and resyncs", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		_, _, err := svc.UpsertEvent(models.Event{ID: "tasting", Title: "Tasting"})
		require.NoError(t, err)

		row, err := svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: "12 May", SeatsTotal: 5})
		require.NoError(t, err)

		removed, err := svc.DeleteDate(row.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		ev, err := svc.Event("tasting")
		require.NoError(t, err)
		require.NotNil(t, ev)
		assert.Empty(t, ev.Dates)
	})

	t.Run("Unknown id reports false", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t)

		removed, err := svc.DeleteDate("nope")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestCascadeDelete(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, _, err := svc.UpsertEvent(models.Event{ID: "tasting", Title: "Tasting"})
	require.NoError(t, err)

	for _, label := range []string{"a", "b", "c"} {
		_, err = svc.UpsertDate(normalize.EventDateInput{EventID: "tasting", Label: label, SeatsTotal: 5})
		require.NoError(t, err)
	}

	removed, err := svc.DeleteEvent("tasting")
	require.NoError(t, err)
	assert.True(t, removed)

	rows, err := svc.ListDatesByEvent("tasting")
	require.NoError(t, err)
	assert.Empty(t, rows)

	ev, err := svc.Event("tasting")
	require.NoError(t, err)
	assert.Nil(t, ev)
}
