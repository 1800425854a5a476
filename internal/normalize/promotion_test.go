package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventAdmin/internal/models"
)

func TestPromotion(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Kind maps modal case-insensitively", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"modal", "MODAL", "Modal"} {
			out, _ := Promotion(PromotionInput{Title: "X", Kind: raw}, now)
			assert.Equal(t, models.PromotionModal, out.Kind)
		}
	})

	t.Run("Unknown kind becomes banner", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Promotion(PromotionInput{Title: "X", Kind: "popup"}, now)

		assert.Equal(t, models.PromotionBanner, out.Kind)
		assert.Contains(t, defaulted, "kind")
	})

	t.Run("Target lowercased with home default", func(t *testing.T) {
		t.Parallel()

		out, _ := Promotion(PromotionInput{Title: "X", Target: " Eventos "}, now)
		assert.Equal(t, "eventos", out.Target)

		out, defaulted := Promotion(PromotionInput{Title: "X"}, now)
		assert.Equal(t, "home", out.Target)
		assert.Contains(t, defaulted, "target")
	})

	t.Run("Active defaults to true", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Promotion(PromotionInput{Title: "X"}, now)
		assert.True(t, out.Active)
		assert.Contains(t, defaulted, "active")

		off := false
		out, _ = Promotion(PromotionInput{Title: "X", Active: &off}, now)
		assert.False(t, out.Active)
	})

	t.Run("Dismiss days minimum one", func(t *testing.T) {
		t.Parallel()

		out, defaulted := Promotion(PromotionInput{Title: "X", DismissDays: 0}, now)

		assert.Equal(t, 1, out.DismissDays)
		assert.Contains(t, defaulted, "dismissDays")
	})

	t.Run("Cta link sanitized", func(t *testing.T) {
		t.Parallel()

		out, _ := Promotion(PromotionInput{Title: "X", CTAHref: "javascript:alert(1)"}, now)

		assert.Equal(t, "#", out.CTAHref)
	})

	t.Run("Id slug derived from title", func(t *testing.T) {
		t.Parallel()

		out, _ := Promotion(PromotionInput{Title: "Oferta de Enero"}, now)

		assert.Equal(t, "oferta-de-enero", out.ID)
	})

	t.Run("Timestamps set from clock", func(t *testing.T) {
		t.Parallel()

		out, _ := Promotion(PromotionInput{Title: "X"}, now)

		assert.Equal(t, now, out.CreatedAt)
		assert.Equal(t, now, out.UpdatedAt)
	})
}
