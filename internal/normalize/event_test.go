package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventAdmin/internal/models"
)

func TestEvent(t *testing.T) {
	t.Parallel()

	t.Run("Id slugified from title", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Event(models.Event{Title: "Tasting"})

		assert.Equal(t, "tasting", out.ID)
		assert.Contains(t, defaulted, "id")
	})

	t.Run("Empty title falls back to evento", func(t *testing.T) {
		t.Parallel()

		out, _ := Event(models.Event{})

		assert.Equal(t, "evento", out.ID)
	})

	t.Run("Explicit id preserved", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Event(models.Event{ID: "cata-enero", Title: "Cata"})

		assert.Equal(t, "cata-enero", out.ID)
		assert.NotContains(t, defaulted, "id")
	})

	t.Run("Month key uppercased", func(t *testing.T) {
		t.Parallel()

		out, _ := Event(models.Event{Title: "X", MonthKey: " enero "})

		assert.Equal(t, "ENERO", out.MonthKey)
	})

	t.Run("Duration resolves to time range when set", func(t *testing.T) {
		t.Parallel()

		out, _ := Event(models.Event{Title: "X", TimeRange: "18:00 - 20:00", DurationHours: "2"})

		assert.Equal(t, "18:00 - 20:00", out.Duration)
	})

	t.Run("Duration falls back to duration hours", func(t *testing.T) {
		t.Parallel()

		out, _ := Event(models.Event{Title: "X", DurationHours: "2.5 horas"})

		assert.Equal(t, "2.5", out.DurationHours)
		assert.Equal(t, "2.5", out.Duration)
	})

	t.Run("Non-numeric duration passes through trimmed", func(t *testing.T) {
		t.Parallel()

		out, _ := Event(models.Event{Title: "X", DurationHours: " toda la tarde "})

		assert.Equal(t, "toda la tarde", out.DurationHours)
	})

	t.Run("Date entries coerced", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Event(models.Event{
			Title: "X",
			Dates: []models.LegacyDate{
				{Label: " 12 May ", Seats: 10},
				{Label: "", Seats: -3},
			},
		})

		assert.Equal(t, []models.LegacyDate{
			{Label: "12 May", Seats: 10},
			{Label: "Por definir", Seats: 0},
		}, out.Dates)
		assert.Contains(t, defaulted, "dates.label")
		assert.Contains(t, defaulted, "dates.seats")
	})
}
