package data

import (
	"fmt"
	"sort"

	"eventAdmin/internal/models"
)

// SyncLegacyDates recomputes every event's embedded dates view from the
// event-date rows. Pure: callers get a fresh slice, inputs stay untouched.
// An event with no rows ends up with an empty view — once any rows exist
// the collection is authoritative and the overwrite is deliberate, which
// is why bootstrap migrates legacy arrays into rows before the first run.
func SyncLegacyDates(events []models.Event, dates []models.EventDate) []models.Event {
	byEvent := make(map[string][]models.EventDate, len(events))
	for _, r := range dates {
		byEvent[r.EventID] = append(byEvent[r.EventID], r)
	}

	out := make([]models.Event, len(events))
	copy(out, events)

	for i := range out {
		own := byEvent[out[i].ID]
		sort.SliceStable(own, func(a, b int) bool {
			return own[a].CreatedAt.Before(own[b].CreatedAt)
		})

		out[i].Dates = legacyView(own)
	}

	return out
}

// legacyView maps already-ordered rows onto the denormalized shape older
// readers consume.
func legacyView(rows []models.EventDate) []models.LegacyDate {
	view := make([]models.LegacyDate, 0, len(rows))
	for _, r := range rows {
		view = append(view, models.LegacyDate{Label: r.Label, Seats: r.SeatsAvailable})
	}

	return view
}

func (s *Service) syncLegacyView() error {
	const op = "data.syncLegacyView"

	events, err := s.readEvents()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dates, err := s.readDates()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.writeEvents(SyncLegacyDates(events, dates)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
