package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
	"eventAdmin/internal/storage"
)

func (s *Service) readEvents() ([]models.Event, error) {
	const op = "data.readEvents"

	raw, err := s.store.Get(storage.KeyEvents)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var events []models.Event
	if err = json.Unmarshal(raw, &events); err != nil {
		// Corrupt payloads read as an empty collection.
		s.log.Warn("discarding corrupt collection", slog.String("key", storage.KeyEvents), sl.Err(err))
		return nil, nil
	}

	return events, nil
}

func (s *Service) writeEvents(events []models.Event) error {
	return s.writeJSON(storage.KeyEvents, events)
}

// Events returns every event, newest first.
func (s *Service) Events() ([]models.Event, error) {
	return s.readEvents()
}

// Event returns the event with the given id, or nil when absent.
func (s *Service) Event(id string) (*models.Event, error) {
	events, err := s.readEvents()
	if err != nil {
		return nil, err
	}

	for i := range events {
		if events[i].ID == id {
			ev := events[i]
			return &ev, nil
		}
	}

	return nil, nil
}

// UpsertEvent normalizes the input and inserts or replaces the event with
// the resolved id. Once event-date rows exist for the event, its embedded
// dates view is recomputed from them; whatever the input carried there is
// not authoritative.
func (s *Service) UpsertEvent(in models.Event) (models.Event, []string, error) {
	const op = "data.UpsertEvent"

	ev, defaulted := normalize.Event(in)

	events, err := s.readEvents()
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.datesForEvent(ev.ID)
	if err != nil {
		return models.Event{}, nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) > 0 {
		ev.Dates = legacyView(rows)
	}

	found := false
	for i := range events {
		if events[i].ID == ev.ID {
			events[i] = ev
			found = true
			break
		}
	}
	if !found {
		events = append([]models.Event{ev}, events...)
	}

	if err = s.writeEvents(events); err != nil {
		return models.Event{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return ev, defaulted, nil
}

// DeleteEvent removes an event and cascade-deletes its event-date rows.
// Returns false when no event had the id.
func (s *Service) DeleteEvent(id string) (bool, error) {
	const op = "data.DeleteEvent"

	events, err := s.readEvents()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	kept := events[:0:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}

	if len(kept) == len(events) {
		return false, nil
	}

	if err = s.writeEvents(kept); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = s.DeleteDatesByEvent(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}
