package data

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"eventAdmin/internal/models"
)

// seedEvents returns the default catalogue used when the events collection
// is empty on first boot. Entries still carry embedded legacy dates; the
// migration below lifts those into event-date rows right away.
func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          "cata-de-vinos",
			Type:        "Gastronomía",
			MonthKey:    "ENERO",
			Title:       "Cata de Vinos",
			Description: "Recorrido guiado por cuatro vinos de la tierra con maridaje.",
			Location:    "Sala principal",
			TimeRange:   "19:00 - 21:00",
			Duration:    "19:00 - 21:00",
			Dates: []models.LegacyDate{
				{Label: "Viernes 17", Seats: 20},
				{Label: "Por definir", Seats: 20},
			},
		},
		{
			ID:            "taller-de-ceramica",
			Type:          "Taller",
			MonthKey:      "FEBRERO",
			Title:         "Taller de Cerámica",
			Description:   "Modelado a mano para principiantes, pieza incluida.",
			Location:      "Patio cubierto",
			DurationHours: "2",
			Duration:      "2",
			Dates: []models.LegacyDate{
				{Label: "Sábado 8", Seats: 12},
			},
		},
	}
}

// Bootstrap populates empty collections with seed data and performs the
// one-time migration of embedded legacy dates into event-date rows. Safe
// to run on every boot: seeding only touches empty collections, and the
// migration is guarded by the event_dates collection being empty — once
// any row exists it never runs again.
func (s *Service) Bootstrap() error {
	const op = "data.Bootstrap"

	events, err := s.readEvents()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(events) == 0 {
		events = seedEvents()
		if err = s.writeEvents(events); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		s.log.Info("seeded default events")
	}

	rows, err := s.readDates()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(rows) > 0 {
		return nil
	}

	now := s.clock.Now()

	migrated := make([]models.EventDate, 0)
	for _, ev := range events {
		for _, d := range ev.Dates {
			migrated = append(migrated, models.EventDate{
				ID:             uuid.NewString(),
				EventID:        ev.ID,
				Label:          d.Label,
				SeatsTotal:     d.Seats,
				SeatsAvailable: d.Seats,
				CreatedAt:      now,
			})
		}
	}

	if len(migrated) == 0 {
		// Nothing to lift; running the synchronizer now would wipe
		// nothing, but skip it anyway so an empty boot stays a no-op.
		return nil
	}

	if err = s.writeDates(migrated); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Rows first, then the derived view: the synchronizer overwrites
	// every event's embedded dates from the collection.
	if err = s.syncLegacyView(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("migrated legacy dates", slog.Int("rows", len(migrated)))

	return nil
}
