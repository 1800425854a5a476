package upsertPromotion

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/normalize"
)

type PromotionRequest struct {
	ID          string `json:"id"`
	Active      *bool  `json:"active"`
	Kind        string `json:"kind"`
	Target      string `json:"target"`
	Priority    int    `json:"priority"`
	Badge       string `json:"badge"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Note        string `json:"note"`
	CTALabel    string `json:"ctaLabel"`
	CTAHref     string `json:"ctaHref"`
	MediaImg    string `json:"mediaImg"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	DismissDays int    `json:"dismissDays"`
}

type PromotionResponse struct {
	response.Response
	Promotion       models.Promotion `json:"promotion"`
	DefaultedFields []string         `json:"defaulted_fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromotionUpserter
type PromotionUpserter interface {
	UpsertPromotion(in normalize.PromotionInput) (models.Promotion, []string, error)
}

func New(log *slog.Logger, promos PromotionUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.promotion.upsertPromotion.New"

		log = log.With(slog.String("op", op))

		var req PromotionRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		promo, defaulted, err := promos.UpsertPromotion(normalize.PromotionInput{
			ID:          req.ID,
			Active:      req.Active,
			Kind:        req.Kind,
			Target:      req.Target,
			Priority:    req.Priority,
			Badge:       req.Badge,
			Title:       req.Title,
			Description: req.Description,
			Note:        req.Note,
			CTALabel:    req.CTALabel,
			CTAHref:     req.CTAHref,
			MediaImg:    req.MediaImg,
			StartAt:     req.StartAt,
			EndAt:       req.EndAt,
			DismissDays: req.DismissDays,
		})
		if err != nil {
			log.Error("failed to upsert promotion", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save promotion"))
			return
		}

		log.Info("promotion saved", slog.String("id", promo.ID))

		render.JSON(w, r, PromotionResponse{
			Response:        response.OK(),
			Promotion:       promo,
			DefaultedFields: defaulted,
		})
	}
}
