// Package data is the local relational layer of the admin console. It owns
// every persisted collection, keeps the seat inventory consistent with the
// legacy per-event dates view, and never reaches past the two-method
// storage adapter it is constructed with.
package data

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"eventAdmin/internal/clock"
	"eventAdmin/internal/storage"
)

// Service is the single handle all callers go through. No other component
// caches authoritative copies; UI layers re-read through the getters after
// every mutation.
type Service struct {
	log   *slog.Logger
	store storage.Store
	clock clock.Clock
}

func New(log *slog.Logger, store storage.Store, clk clock.Clock) *Service {
	return &Service{
		log:   log,
		store: store,
		clock: clk,
	}
}

func (s *Service) writeJSON(key string, v any) error {
	const op = "data.writeJSON"

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.store.Set(key, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
