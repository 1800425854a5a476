package normalize

import (
	"strings"
	"time"

	"eventAdmin/internal/lib/slug"
	"eventAdmin/internal/models"
)

const (
	// DefaultTarget scopes promotions with no explicit audience.
	DefaultTarget = "home"

	promoSlugFallback = "promo"
)

// PromotionInput mirrors raw promotion input. Active is a pointer so an
// omitted flag defaults to true instead of false.
type PromotionInput struct {
	ID          string
	Active      *bool
	Kind        string
	Target      string
	Priority    int
	Badge       string
	Title       string
	Description string
	Note        string
	CTALabel    string
	CTAHref     string
	MediaImg    string
	StartAt     string
	EndAt       string
	DismissDays int
}

// Promotion coerces raw input into a canonical record. Kind and target are
// always forced onto their enum values; the CTA link goes through the
// scheme allow-list.
func Promotion(in PromotionInput, now time.Time) (models.Promotion, []string) {
	var defaulted []string

	out := models.Promotion{
		ID:          strings.TrimSpace(in.ID),
		Badge:       strings.TrimSpace(in.Badge),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Note:        strings.TrimSpace(in.Note),
		CTALabel:    strings.TrimSpace(in.CTALabel),
		CTAHref:     Href(in.CTAHref),
		MediaImg:    strings.TrimSpace(in.MediaImg),
		StartAt:     strings.TrimSpace(in.StartAt),
		EndAt:       strings.TrimSpace(in.EndAt),
		Priority:    in.Priority,
		DismissDays: in.DismissDays,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if out.ID == "" {
		out.ID = slug.Make(out.Title, promoSlugFallback)
		defaulted = append(defaulted, "id")
	}

	if in.Active == nil {
		out.Active = true
		defaulted = append(defaulted, "active")
	} else {
		out.Active = *in.Active
	}

	if strings.EqualFold(strings.TrimSpace(in.Kind), "modal") {
		out.Kind = models.PromotionModal
	} else {
		out.Kind = models.PromotionBanner
		if !strings.EqualFold(strings.TrimSpace(in.Kind), "banner") {
			defaulted = append(defaulted, "kind")
		}
	}

	out.Target = strings.ToLower(strings.TrimSpace(in.Target))
	if out.Target == "" {
		out.Target = DefaultTarget
		defaulted = append(defaulted, "target")
	}

	if out.DismissDays < 1 {
		out.DismissDays = 1
		defaulted = append(defaulted, "dismissDays")
	}

	return out, defaulted
}
