package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
	"eventAdmin/internal/storage"
)

func (s *Service) readDates() ([]models.EventDate, error) {
	const op = "data.readDates"

	raw, err := s.store.Get(storage.KeyEventDates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rows []models.EventDate
	if err = json.Unmarshal(raw, &rows); err != nil {
		s.log.Warn("discarding corrupt collection", slog.String("key", storage.KeyEventDates), sl.Err(err))
		return nil, nil
	}

	return rows, nil
}

func (s *Service) writeDates(rows []models.EventDate) error {
	return s.writeJSON(storage.KeyEventDates, rows)
}

// datesForEvent returns the rows belonging to an event in creation order.
// Orphaned rows (unknown event id) stay persisted but never show up here.
func (s *Service) datesForEvent(eventID string) ([]models.EventDate, error) {
	rows, err := s.readDates()
	if err != nil {
		return nil, err
	}

	own := make([]models.EventDate, 0, len(rows))
	for _, r := range rows {
		if r.EventID == eventID {
			own = append(own, r)
		}
	}

	sortByCreation(own)

	return own, nil
}

func sortByCreation(rows []models.EventDate) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
}

// ListDatesByEvent returns an event's sessions ascending by creation time.
func (s *Service) ListDatesByEvent(eventID string) ([]models.EventDate, error) {
	return s.datesForEvent(eventID)
}

// UpsertDate normalizes and stores one event-date row, then resynchronizes
// the legacy view. Returns nil (and no error) when the input has no event
// id; such rows are never persisted. On update the original creation
// timestamp survives; new rows are inserted newest-first.
func (s *Service) UpsertDate(in normalize.EventDateInput) (*models.EventDate, error) {
	const op = "data.UpsertDate"

	row, _, ok := normalize.EventDate(in, s.clock.Now())
	if !ok {
		return nil, nil
	}

	rows, err := s.readDates()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	found := false
	for i := range rows {
		if rows[i].ID == row.ID {
			row.CreatedAt = rows[i].CreatedAt
			rows[i] = row
			found = true
			break
		}
	}
	if !found {
		rows = append([]models.EventDate{row}, rows...)
	}

	if err = s.writeDates(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.syncLegacyView(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &row, nil
}

// DeleteDate removes one row by id. Returns false when nothing matched.
func (s *Service) DeleteDate(id string) (bool, error) {
	const op = "data.DeleteDate"

	rows, err := s.readDates()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	kept := rows[:0:0]
	for _, r := range rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if len(kept) == len(rows) {
		return false, nil
	}

	if err = s.writeDates(kept); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.syncLegacyView(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// DeleteDatesByEvent cascade-removes every row of an event and reports how
// many went away.
func (s *Service) DeleteDatesByEvent(eventID string) (int, error) {
	const op = "data.DeleteDatesByEvent"

	rows, err := s.readDates()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	kept := rows[:0:0]
	for _, r := range rows {
		if r.EventID != eventID {
			kept = append(kept, r)
		}
	}

	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err = s.writeDates(kept); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.syncLegacyView(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return removed, nil
}

// DecrementSeat takes one seat from the event-date row matching the event
// id and the exact label string. Labels are compared verbatim: no trimming
// or case folding, first match in creation order wins. Returns false and
// changes nothing when no row matches or the row is already at zero.
//
// Callers recording a registration are expected to pair it with this call
// and check both results; the two steps are deliberately not transactional.
func (s *Service) DecrementSeat(eventID, label string) (bool, error) {
	const op = "data.DecrementSeat"

	rows, err := s.readDates()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	own := make([]int, 0, len(rows))
	for i, r := range rows {
		if r.EventID == eventID {
			own = append(own, i)
		}
	}

	if len(own) == 0 {
		// Compatibility path for events that predate the event_dates
		// collection: operate on the embedded legacy array directly.
		return s.decrementLegacySeat(eventID, label)
	}

	sort.SliceStable(own, func(i, j int) bool {
		return rows[own[i]].CreatedAt.Before(rows[own[j]].CreatedAt)
	})

	for _, i := range own {
		if rows[i].Label != label {
			continue
		}

		if rows[i].SeatsAvailable <= 0 {
			return false, nil
		}

		rows[i].SeatsAvailable--

		if err = s.writeDates(rows); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}

		if err = s.syncLegacyView(); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}

		return true, nil
	}

	return false, nil
}

// decrementLegacySeat mutates an event's embedded dates array by the same
// label-match rule. The synchronizer must not run here: the event has no
// rows, and a resync would wipe the very array being decremented.
func (s *Service) decrementLegacySeat(eventID, label string) (bool, error) {
	const op = "data.decrementLegacySeat"

	events, err := s.readEvents()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	for i := range events {
		if events[i].ID != eventID {
			continue
		}

		for j := range events[i].Dates {
			if events[i].Dates[j].Label != label {
				continue
			}

			if events[i].Dates[j].Seats <= 0 {
				return false, nil
			}

			events[i].Dates[j].Seats--

			if err = s.writeEvents(events); err != nil {
				return false, fmt.Errorf("%s: %w", op, err)
			}

			return true, nil
		}

		return false, nil
	}

	return false, nil
}
