package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/storage"
)

func (s *Service) readRegistrations() ([]models.Registration, error) {
	const op = "data.readRegistrations"

	raw, err := s.store.Get(storage.KeyRegistrations)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var regs []models.Registration
	if err = json.Unmarshal(raw, &regs); err != nil {
		s.log.Warn("discarding corrupt collection", slog.String("key", storage.KeyRegistrations), sl.Err(err))
		return nil, nil
	}

	return regs, nil
}

// Registrations returns every registration in creation order.
func (s *Service) Registrations() ([]models.Registration, error) {
	return s.readRegistrations()
}

// RegistrationsByEvent filters registrations for one event.
func (s *Service) RegistrationsByEvent(eventID string) ([]models.Registration, error) {
	regs, err := s.readRegistrations()
	if err != nil {
		return nil, err
	}

	own := make([]models.Registration, 0, len(regs))
	for _, r := range regs {
		if r.EventID == eventID {
			own = append(own, r)
		}
	}

	return own, nil
}

// CreateRegistration appends a registration record. The collection is
// append-only from this layer's perspective. Taking the reserved seat is a
// separate DecrementSeat call; callers must check both results.
func (s *Service) CreateRegistration(in models.Registration) (models.Registration, error) {
	const op = "data.CreateRegistration"

	reg := in
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)

	if strings.TrimSpace(reg.ID) == "" {
		reg.ID = uuid.NewString()
	}
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = s.clock.Now()
	}

	regs, err := s.readRegistrations()
	if err != nil {
		return models.Registration{}, fmt.Errorf("%s: %w", op, err)
	}

	regs = append(regs, reg)

	if err = s.writeJSON(storage.KeyRegistrations, regs); err != nil {
		return models.Registration{}, fmt.Errorf("%s: %w", op, err)
	}

	return reg, nil
}
