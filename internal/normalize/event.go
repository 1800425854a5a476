package normalize

import (
	"regexp"
	"strings"

	"eventAdmin/internal/lib/slug"
	"eventAdmin/internal/models"
)

const (
	// DefaultDateLabel replaces empty labels on legacy date entries.
	DefaultDateLabel = "Por definir"

	eventSlugFallback = "evento"
)

var numberTokenRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// Event coerces arbitrary event input into a canonical record. It never
// fails; missing or invalid fields are replaced with defaults and the
// names of the defaulted fields are reported alongside the record.
func Event(in models.Event) (models.Event, []string) {
	var defaulted []string

	out := in

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		out.ID = slug.Make(out.Title, eventSlugFallback)
		defaulted = append(defaulted, "id")
	}

	out.Type = strings.TrimSpace(out.Type)
	out.MonthKey = strings.ToUpper(strings.TrimSpace(out.MonthKey))
	out.Title = strings.TrimSpace(out.Title)
	out.Location = strings.TrimSpace(out.Location)
	out.TimeRange = strings.TrimSpace(out.TimeRange)
	out.DurationHours = durationHours(out.DurationHours)

	if out.TimeRange != "" {
		out.Duration = out.TimeRange
	} else {
		out.Duration = out.DurationHours
	}

	dates := make([]models.LegacyDate, 0, len(out.Dates))
	for _, d := range out.Dates {
		label := strings.TrimSpace(d.Label)
		if label == "" {
			label = DefaultDateLabel
			defaulted = append(defaulted, "dates.label")
		}

		seats := d.Seats
		if seats < 0 {
			seats = 0
			defaulted = append(defaulted, "dates.seats")
		}

		dates = append(dates, models.LegacyDate{Label: label, Seats: seats})
	}
	out.Dates = dates

	return out, defaulted
}

// durationHours reduces a numeric-looking duration string to its first
// decimal number token; anything else passes through trimmed.
func durationHours(raw string) string {
	s := strings.TrimSpace(raw)

	if tok := numberTokenRe.FindString(s); tok != "" {
		return tok
	}

	return s
}
