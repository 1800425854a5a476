package models

import "time"

type PromotionKind string

const (
	PromotionBanner PromotionKind = "BANNER"
	PromotionModal  PromotionKind = "MODAL"
)

// Promotion is a scheduled marketing banner or modal scoped to a target
// page. StartAt/EndAt hold RFC 3339 timestamps; an empty or unparseable
// bound means no constraint on that side.
type Promotion struct {
	ID          string        `json:"id"`
	Active      bool          `json:"active"`
	Kind        PromotionKind `json:"kind"`
	Target      string        `json:"target"`
	Priority    int           `json:"priority"`
	Badge       string        `json:"badge"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Note        string        `json:"note"`
	CTALabel    string        `json:"ctaLabel"`
	CTAHref     string        `json:"ctaHref"`
	MediaImg    string        `json:"mediaImg"`
	StartAt     string        `json:"startAt"`
	EndAt       string        `json:"endAt"`
	DismissDays int           `json:"dismissDays"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
