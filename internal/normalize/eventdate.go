package normalize

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eventAdmin/internal/models"
)

// MaxSeats bounds seat counters on event-date rows.
const MaxSeats = 1_000_000

// EventDateInput mirrors raw event-date input. SeatsAvailable is a pointer
// so "not provided" can be told apart from zero; nil defaults to SeatsTotal.
type EventDateInput struct {
	ID             string
	EventID        string
	Label          string
	SeatsTotal     int
	SeatsAvailable *int
	CreatedAt      time.Time
}

// EventDate coerces raw input into a canonical row. The third return value
// is false when the input has no event id; such rows are never persisted.
// SeatsAvailable is clamped to [0, MaxSeats] but deliberately not to
// SeatsTotal: only the decrement and update operations enforce that bound.
func EventDate(in EventDateInput, now time.Time) (models.EventDate, []string, bool) {
	var defaulted []string

	eventID := strings.TrimSpace(in.EventID)
	if eventID == "" {
		return models.EventDate{}, nil, false
	}

	out := models.EventDate{
		ID:      strings.TrimSpace(in.ID),
		EventID: eventID,
		Label:   strings.TrimSpace(in.Label),
	}

	if out.ID == "" {
		out.ID = uuid.NewString()
		defaulted = append(defaulted, "id")
	}

	if out.Label == "" {
		out.Label = DefaultDateLabel
		defaulted = append(defaulted, "label")
	}

	out.SeatsTotal = clampSeats(in.SeatsTotal)
	if out.SeatsTotal != in.SeatsTotal {
		defaulted = append(defaulted, "seats_total")
	}

	if in.SeatsAvailable == nil {
		out.SeatsAvailable = out.SeatsTotal
		defaulted = append(defaulted, "seats_available")
	} else {
		out.SeatsAvailable = clampSeats(*in.SeatsAvailable)
	}

	out.CreatedAt = in.CreatedAt
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
		defaulted = append(defaulted, "created_at")
	}

	return out, defaulted, true
}

func clampSeats(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxSeats {
		return MaxSeats
	}
	return n
}
