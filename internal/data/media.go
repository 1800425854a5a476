package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/storage"
)

// defaultMedia are merged into every read of the singleton media config.
var defaultMedia = models.MediaConfig{
	Logo:      "/assets/img/logo.png",
	HeroImg:   "/assets/img/hero.jpg",
	WhatsApp:  "34600000000",
	Instagram: "https://instagram.com/espacioeventos",
}

// MediaConfig returns the singleton media record with defaults filled in
// for any empty field.
func (s *Service) MediaConfig() (models.MediaConfig, error) {
	const op = "data.MediaConfig"

	cfg := defaultMedia

	raw, err := s.store.Get(storage.KeyMediaConfig)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return cfg, nil
		}
		return models.MediaConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	var stored models.MediaConfig
	if err = json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn("discarding corrupt collection", slog.String("key", storage.KeyMediaConfig), sl.Err(err))
		return cfg, nil
	}

	return mergeMedia(stored), nil
}

// UpdateMediaConfig overwrites the fields provided in the input; empty
// fields keep their current value. Returns the merged record.
func (s *Service) UpdateMediaConfig(in models.MediaConfig) (models.MediaConfig, error) {
	const op = "data.UpdateMediaConfig"

	current, err := s.MediaConfig()
	if err != nil {
		return models.MediaConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	if in.Logo != "" {
		current.Logo = in.Logo
	}
	if in.HeroImg != "" {
		current.HeroImg = in.HeroImg
	}
	if in.WhatsApp != "" {
		current.WhatsApp = in.WhatsApp
	}
	if in.Instagram != "" {
		current.Instagram = in.Instagram
	}

	if err = s.writeJSON(storage.KeyMediaConfig, current); err != nil {
		return models.MediaConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	return current, nil
}

func mergeMedia(stored models.MediaConfig) models.MediaConfig {
	out := stored

	if out.Logo == "" {
		out.Logo = defaultMedia.Logo
	}
	if out.HeroImg == "" {
		out.HeroImg = defaultMedia.HeroImg
	}
	if out.WhatsApp == "" {
		out.WhatsApp = defaultMedia.WhatsApp
	}
	if out.Instagram == "" {
		out.Instagram = defaultMedia.Instagram
	}

	return out
}
