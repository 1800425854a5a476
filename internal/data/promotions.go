package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
	"eventAdmin/internal/storage"
)

func (s *Service) readPromotions() ([]models.Promotion, error) {
	const op = "data.readPromotions"

	raw, err := s.store.Get(storage.KeyPromotions)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var promos []models.Promotion
	if err = json.Unmarshal(raw, &promos); err != nil {
		s.log.Warn("discarding corrupt collection", slog.String("key", storage.KeyPromotions), sl.Err(err))
		return nil, nil
	}

	return promos, nil
}

// Promotions returns every promotion, newest first.
func (s *Service) Promotions() ([]models.Promotion, error) {
	return s.readPromotions()
}

// UpsertPromotion normalizes and inserts or replaces a promotion by its
// resolved id. The original creation timestamp survives an update.
func (s *Service) UpsertPromotion(in normalize.PromotionInput) (models.Promotion, []string, error) {
	const op = "data.UpsertPromotion"

	promo, defaulted := normalize.Promotion(in, s.clock.Now())

	promos, err := s.readPromotions()
	if err != nil {
		return models.Promotion{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	found := false
	for i := range promos {
		if promos[i].ID == promo.ID {
			promo.CreatedAt = promos[i].CreatedAt
			promos[i] = promo
			found = true
			break
		}
	}
	if !found {
		promos = append([]models.Promotion{promo}, promos...)
	}

	if err = s.writeJSON(storage.KeyPromotions, promos); err != nil {
		return models.Promotion{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return promo, defaulted, nil
}

// DeletePromotion removes a promotion by id; false when nothing matched.
func (s *Service) DeletePromotion(id string) (bool, error) {
	const op = "data.DeletePromotion"

	promos, err := s.readPromotions()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	kept := promos[:0:0]
	for _, p := range promos {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(promos) {
		return false, nil
	}

	if err = s.writeJSON(storage.KeyPromotions, kept); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

// ActivePromotions returns the promotions visible on a target page right
// now: active, matching target, and inside their scheduling window. An
// absent or unparseable bound constrains nothing. Ordered by priority
// descending; ties keep stored order.
func (s *Service) ActivePromotions(target string) ([]models.Promotion, error) {
	promos, err := s.readPromotions()
	if err != nil {
		return nil, err
	}

	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		target = normalize.DefaultTarget
	}

	now := s.clock.Now()

	active := make([]models.Promotion, 0, len(promos))
	for _, p := range promos {
		if !p.Active || p.Target != target {
			continue
		}
		if !withinWindow(now, p.StartAt, p.EndAt) {
			continue
		}
		active = append(active, p)
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	return active, nil
}

func withinWindow(now time.Time, startAt, endAt string) bool {
	if t, ok := parseBound(startAt); ok && now.Before(t) {
		return false
	}
	if t, ok := parseBound(endAt); ok && now.After(t) {
		return false
	}

	return true
}

var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseBound(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
